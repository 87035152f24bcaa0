// internal/version/version.go
package version

// Version is stamped at build time:
//
//	go build -ldflags "-X isru/internal/version.Version=v1.2.0" ./cmd/...
var Version = "dev"
