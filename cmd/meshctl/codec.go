package main

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// configDoc is the YAML document shape for both desired configs and actual
// state snapshots. Which fields are meaningful depends on type; address is
// required on every node of an actual snapshot and only on opaque nodes of
// a desired config.
type configDoc struct {
	Type       string                `yaml:"type"`
	Address    string                `yaml:"address,omitempty"`
	Owner      string                `yaml:"owner,omitempty"`
	Validators []string              `yaml:"validators,omitempty"`
	Threshold  uint64                `yaml:"threshold,omitempty"`
	Members    []*configDoc          `yaml:"members,omitempty"`
	Routes     map[string]*configDoc `yaml:"routes,omitempty"`
	Relayer    string                `yaml:"relayer,omitempty"`
	GasParams  map[string]gasDoc     `yaml:"gasParams,omitempty"`
}

type gasDoc struct {
	ExchangeRate string `yaml:"exchangeRate"`
	GasPrice     string `yaml:"gasPrice"`
	Overhead     uint64 `yaml:"overhead"`
}

func loadConfigDoc(path string) (*configDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	var doc configDoc
	err = yaml.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return &doc, nil
}

// toConfig converts a document node into a desired configuration.
func (doc *configDoc) toConfig() (mesh.Config, error) {
	switch doc.Type {
	case "opaque":
		address, err := mesh.HexToIdentifier(doc.Address)
		if err != nil {
			return nil, err
		}
		return mesh.OpaqueReference{Address: address}, nil

	case "multisig":
		validators := make([]mesh.Identifier, 0, len(doc.Validators))
		for _, v := range doc.Validators {
			id, err := mesh.HexToIdentifier(v)
			if err != nil {
				return nil, err
			}
			validators = append(validators, id)
		}
		return mesh.MultisigConfig{Validators: validators, Threshold: doc.Threshold}, nil

	case "routing":
		owner, err := mesh.HexToIdentifier(doc.Owner)
		if err != nil {
			return nil, err
		}
		routes := make(map[mesh.EndpointID]mesh.Config, len(doc.Routes))
		for endpoint, sub := range doc.Routes {
			route, err := sub.toConfig()
			if err != nil {
				return nil, fmt.Errorf("invalid route for endpoint %s: %w", endpoint, err)
			}
			routes[mesh.EndpointID(endpoint)] = route
		}
		return mesh.RoutingConfig{Owner: owner, Routes: routes}, nil

	case "aggregation":
		members := make([]mesh.Config, 0, len(doc.Members))
		for i, sub := range doc.Members {
			member, err := sub.toConfig()
			if err != nil {
				return nil, fmt.Errorf("invalid aggregation member %d: %w", i, err)
			}
			members = append(members, member)
		}
		return mesh.AggregationConfig{Threshold: doc.Threshold, Members: members}, nil

	case "gas-oracle-hook":
		owner, err := mesh.HexToIdentifier(doc.Owner)
		if err != nil {
			return nil, err
		}
		perEndpoint := make(map[mesh.EndpointID]mesh.GasParams, len(doc.GasParams))
		for endpoint, params := range doc.GasParams {
			decoded, err := params.toGasParams()
			if err != nil {
				return nil, fmt.Errorf("invalid gas params for endpoint %s: %w", endpoint, err)
			}
			perEndpoint[mesh.EndpointID(endpoint)] = decoded
		}
		return mesh.GasOracleHookConfig{Owner: owner, PerEndpoint: perEndpoint}, nil

	case "pausable":
		owner, err := mesh.HexToIdentifier(doc.Owner)
		if err != nil {
			return nil, err
		}
		return mesh.PausableConfig{Owner: owner}, nil

	case "trusted-relayer":
		relayer, err := mesh.HexToIdentifier(doc.Relayer)
		if err != nil {
			return nil, err
		}
		return mesh.TrustedRelayerConfig{Relayer: relayer}, nil

	case "noop":
		return mesh.NoopConfig{}, nil

	default:
		return nil, fmt.Errorf("unknown module type %q", doc.Type)
	}
}

// toDerived converts a snapshot document node into a derived config tree.
// Every node must carry an address; nested routes and members become
// derived configs themselves.
func (doc *configDoc) toDerived() (*mesh.DerivedConfig, error) {
	address, err := mesh.HexToIdentifier(doc.Address)
	if err != nil {
		return nil, fmt.Errorf("snapshot node of type %q: %w", doc.Type, err)
	}

	var config mesh.Config
	switch doc.Type {
	case "routing":
		owner, err := mesh.HexToIdentifier(doc.Owner)
		if err != nil {
			return nil, err
		}
		routes := make(map[mesh.EndpointID]mesh.Config, len(doc.Routes))
		for endpoint, sub := range doc.Routes {
			route, err := sub.toDerived()
			if err != nil {
				return nil, fmt.Errorf("invalid route snapshot for endpoint %s: %w", endpoint, err)
			}
			routes[mesh.EndpointID(endpoint)] = route
		}
		config = mesh.RoutingConfig{Owner: owner, Routes: routes}

	case "aggregation":
		members := make([]mesh.Config, 0, len(doc.Members))
		for i, sub := range doc.Members {
			member, err := sub.toDerived()
			if err != nil {
				return nil, fmt.Errorf("invalid member snapshot %d: %w", i, err)
			}
			members = append(members, member)
		}
		config = mesh.AggregationConfig{Threshold: doc.Threshold, Members: members}

	default:
		config, err = doc.toConfig()
		if err != nil {
			return nil, err
		}
	}
	return &mesh.DerivedConfig{Address: address, Config: config}, nil
}

func (g gasDoc) toGasParams() (mesh.GasParams, error) {
	exchangeRate, ok := new(big.Int).SetString(g.ExchangeRate, 10)
	if !ok {
		return mesh.GasParams{}, fmt.Errorf("invalid exchange rate %q", g.ExchangeRate)
	}
	gasPrice, ok := new(big.Int).SetString(g.GasPrice, 10)
	if !ok {
		return mesh.GasParams{}, fmt.Errorf("invalid gas price %q", g.GasPrice)
	}
	return mesh.GasParams{ExchangeRate: exchangeRate, GasPrice: gasPrice, Overhead: g.Overhead}, nil
}
