package mesh

// DerivedConfig is the configuration observed by reading back a deployed
// instance. It has the same shape as a desired Config but always carries
// the deployed address, and nested modules (routes, aggregation members)
// are themselves *DerivedConfig values, never bare references.
//
// DerivedConfig implements Config so that read-back trees can flow through
// the same normalization and fingerprinting as desired trees; comparison
// of the two only happens after normalization, which strips the addresses.
type DerivedConfig struct {
	Address Identifier
	Config  Config
}

func (d *DerivedConfig) Type() ModuleType {
	if d.Config == nil {
		return ModuleTypeUnknown
	}
	return d.Config.Type()
}

// IsOpaque reports whether the reader could not destructure the instance
// and returned only its address.
func (d *DerivedConfig) IsOpaque() bool {
	_, ok := d.Config.(OpaqueReference)
	return ok
}
