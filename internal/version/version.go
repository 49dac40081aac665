package version

// Version is the docmodel version. It is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/docmodel/internal/version.Version=...".
var Version = "0.1.0-dev"
