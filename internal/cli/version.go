package cli

import "fmt"

// VersionCmd prints the version.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("keyshift version %s\n", Version)
	return nil
}
