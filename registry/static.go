// Package registry provides the static in-memory endpoint registry used to
// filter routing deltas against the locally known topology.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
)

// EndpointMetadata is one entry of an endpoint registry document.
type EndpointMetadata struct {
	Name   string `yaml:"name"`
	Domain uint32 `yaml:"domain"`
}

// Static is an immutable endpoint registry over a fixed name-to-domain
// table. It is safe for concurrent use.
type Static struct {
	domains map[mesh.EndpointID]uint32
}

var _ module.Registry = (*Static)(nil)

// NewStatic creates a registry over the given domain table.
func NewStatic(domains map[mesh.EndpointID]uint32) *Static {
	table := make(map[mesh.EndpointID]uint32, len(domains))
	for endpoint, domain := range domains {
		table[endpoint] = domain
	}
	return &Static{domains: table}
}

// LoadStatic reads a YAML endpoint registry document from path. Duplicate
// endpoint names are rejected: a registry with two domains for one name
// cannot filter routing deltas meaningfully.
func LoadStatic(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read registry file: %w", err)
	}
	var entries []EndpointMetadata
	err = yaml.Unmarshal(raw, &entries)
	if err != nil {
		return nil, fmt.Errorf("could not parse registry file %s: %w", path, err)
	}
	domains := make(map[mesh.EndpointID]uint32, len(entries))
	for _, entry := range entries {
		endpoint := mesh.EndpointID(entry.Name)
		if _, dup := domains[endpoint]; dup {
			return nil, fmt.Errorf("duplicate endpoint %s in registry file %s", entry.Name, path)
		}
		domains[endpoint] = entry.Domain
	}
	return NewStatic(domains), nil
}

// IsKnown reports whether metadata for the endpoint is available.
func (s *Static) IsKnown(endpoint mesh.EndpointID) bool {
	_, known := s.domains[endpoint]
	return known
}

// Resolve returns the numeric domain of a known endpoint.
// Expected errors during normal operations:
//   - module.ErrUnknownEndpoint if the endpoint is not in the table.
func (s *Static) Resolve(endpoint mesh.EndpointID) (uint32, error) {
	domain, known := s.domains[endpoint]
	if !known {
		return 0, fmt.Errorf("could not resolve endpoint %s: %w", endpoint, module.ErrUnknownEndpoint)
	}
	return domain, nil
}
