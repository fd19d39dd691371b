package mesh

import (
	"fmt"
)

// Mutation is a single atomic change operation against a deployed instance.
// The engine only assembles mutations; encoding them into an
// environment-specific call and submitting them is the caller's concern.
type Mutation interface {
	fmt.Stringer
	// isMutation seals the set of mutation variants to this package.
	isMutation()
}

// SetRoute points the routing table entry for Endpoint at Instance,
// creating or overwriting the entry.
type SetRoute struct {
	Endpoint EndpointID
	Instance Identifier
}

func (SetRoute) isMutation() {}

func (m SetRoute) String() string {
	return fmt.Sprintf("set-route %s -> %s", m.Endpoint, m.Instance)
}

// RemoveRoute deletes the routing table entry for Endpoint.
type RemoveRoute struct {
	Endpoint EndpointID
}

func (RemoveRoute) isMutation() {}

func (m RemoveRoute) String() string {
	return fmt.Sprintf("remove-route %s", m.Endpoint)
}

// SetGasParams overwrites the gas oracle parameters for Endpoint.
type SetGasParams struct {
	Endpoint EndpointID
	Params   GasParams
}

func (SetGasParams) isMutation() {}

func (m SetGasParams) String() string {
	return fmt.Sprintf("set-gas-params %s exchangeRate=%v gasPrice=%v overhead=%d",
		m.Endpoint, m.Params.ExchangeRate, m.Params.GasPrice, m.Params.Overhead)
}

// TransferOwnership hands the instance's mutation authority to NewOwner.
// When present, it is always the final element of a plan, so that a
// partially applied plan leaves the previous owner able to retry.
type TransferOwnership struct {
	NewOwner Identifier
}

func (TransferOwnership) isMutation() {}

func (m TransferOwnership) String() string {
	return fmt.Sprintf("transfer-ownership %s", m.NewOwner)
}

// MutationPlan is an ordered sequence of mutations. Order is significant:
// all SetRoute mutations precede all RemoveRoute mutations, and any
// TransferOwnership is last.
type MutationPlan []Mutation

// IsEmpty reports whether the plan contains no mutations.
func (p MutationPlan) IsEmpty() bool {
	return len(p) == 0
}

func (p MutationPlan) String() string {
	if p.IsEmpty() {
		return "empty plan"
	}
	out := ""
	for i, m := range p {
		if i > 0 {
			out += "; "
		}
		out += m.String()
	}
	return out
}
