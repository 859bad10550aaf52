package handlers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imamik/azdns/internal/util/naming"
)

// Names handles the names command.
//
// It prints a freshly drawn name plan as YAML without contacting Azure.
func Names(w io.Writer, src naming.Source) error {
	names := naming.NewNames(src)

	plan := struct {
		naming.Names `yaml:",inline"`
		ChildZone    string `yaml:"childZone"`
	}{
		Names:     names,
		ChildZone: naming.ChildZone(names.Zone),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("failed to encode name plan: %w", err)
	}
	return enc.Close()
}
