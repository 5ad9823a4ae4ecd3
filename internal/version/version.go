// SPDX-License-Identifier: MIT

package version

// Current is the release version; overridable with
// -ldflags "-X github.com/katalvlaran/cargolp/internal/version.Current=...".
var Current = "v0.1.0"

// AppName is the binary name used in help and version output.
const AppName = "cargoplan"
