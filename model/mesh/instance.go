package mesh

// Instance is a deployed, addressable realization of a Config.
type Instance struct {
	// Address is the identifier of the deployed instance.
	Address Identifier
	// Type is the module type the instance was deployed as.
	Type ModuleType
	// Mutable reports whether the instance can be reconfigured in place.
	// Immutable instances are replaced wholesale when their desired
	// configuration changes.
	Mutable bool
}
