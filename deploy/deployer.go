package deploy

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
	"github.com/crossmesh/crossmesh/reconcile"
)

// codeCacheSize bounds the in-memory cache of addresses already verified to
// have code. Static module sets are small; the cache exists to avoid
// re-probing the backend for the same content address within and across
// deploys.
const codeCacheSize = 1024

// FactoryFunc instantiates a module of one specific type through the
// transport backend and returns the deployed address.
type FactoryFunc func(ctx context.Context, config mesh.Config) (mesh.Identifier, error)

// Deployer resolves or deploys configuration trees bottom-up through a
// DeployBackend. The module-type-to-factory table is injected at
// construction so tests can substitute fakes for individual types.
//
// All sub-deploys of a single composite module run sequentially: they share
// one submission identity, whose pending-mutation ordering (nonce
// sequencing) is violated by concurrent submission.
type Deployer struct {
	log       zerolog.Logger
	backend   module.DeployBackend
	registry  module.Registry
	factories map[mesh.ModuleType]FactoryFunc
	codeCache *lru.Cache[mesh.Identifier, struct{}]
}

var _ module.Deployer = (*Deployer)(nil)

// Option customizes a Deployer at construction time.
type Option func(*Deployer)

// WithFactory overrides the factory used for one module type.
func WithFactory(t mesh.ModuleType, factory FactoryFunc) Option {
	return func(d *Deployer) {
		d.factories[t] = factory
	}
}

// NewDeployer returns a deployer submitting through the given backend. By
// default every deployable module type is instantiated via backend.Deploy.
func NewDeployer(log zerolog.Logger, backend module.DeployBackend, registry module.Registry, opts ...Option) (*Deployer, error) {
	codeCache, err := lru.New[mesh.Identifier, struct{}](codeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create code cache: %w", err)
	}
	d := &Deployer{
		log:       log.With().Str("component", "deployer").Logger(),
		backend:   backend,
		registry:  registry,
		factories: make(map[mesh.ModuleType]FactoryFunc),
		codeCache: codeCache,
	}
	for _, t := range []mesh.ModuleType{
		mesh.ModuleTypeMultisig,
		mesh.ModuleTypeRouting,
		mesh.ModuleTypeAggregation,
		mesh.ModuleTypeGasOracleHook,
		mesh.ModuleTypePausable,
		mesh.ModuleTypeTrustedRelayer,
		mesh.ModuleTypeNoop,
	} {
		d.factories[t] = backend.Deploy
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Deploy resolves the configuration to a deployed instance, recursively
// deploying every nested module bottom-up. Opaque references resolve to
// themselves without any deployment. A failed sub-deploy aborts the whole
// call without cleanup; partially deployed static leaves remain as
// harmless content-addressed instances, reusable on retry.
func (d *Deployer) Deploy(ctx context.Context, config mesh.Config) (mesh.Instance, error) {
	switch cfg := config.(type) {
	case mesh.OpaqueReference:
		// externally managed; resolved by address alone
		return mesh.Instance{Address: cfg.Address, Type: mesh.ModuleTypeOpaque, Mutable: false}, nil

	case mesh.MultisigConfig, mesh.TrustedRelayerConfig, mesh.NoopConfig:
		return d.deployStatic(ctx, config)

	case mesh.AggregationConfig:
		return d.deployAggregation(ctx, cfg)

	case mesh.RoutingConfig:
		return d.deployRouting(ctx, cfg)

	case mesh.PausableConfig, mesh.GasOracleHookConfig:
		return d.deployFresh(ctx, config)

	case *mesh.DerivedConfig:
		return mesh.Instance{}, mesh.NewValidationErrorf("cannot deploy a derived config")

	default:
		return mesh.Instance{}, mesh.NewValidationErrorf("cannot deploy config of unknown type %T", config)
	}
}

// deployStatic performs the content-addressed get-or-create path for
// deterministic-address module types: if an instance with the
// content-derived address already has code, it is recovered without any
// mutation; otherwise a fresh deployment is submitted.
func (d *Deployer) deployStatic(ctx context.Context, config mesh.Config) (mesh.Instance, error) {
	// the factory receives the canonical constructor parameters, so the
	// backend's deterministic address matches the content address
	canonical, err := reconcile.Normalize(config)
	if err != nil {
		return mesh.Instance{}, err
	}
	config = canonical
	address, err := ContentAddress(config)
	if err != nil {
		return mesh.Instance{}, err
	}
	instance := mesh.Instance{Address: address, Type: config.Type(), Mutable: false}

	if _, cached := d.codeCache.Get(address); cached {
		return instance, nil
	}
	exists, err := d.backend.HasCode(ctx, address)
	if err != nil {
		return mesh.Instance{}, fmt.Errorf("could not check for existing %s instance at %s: %w", config.Type(), address, err)
	}
	if exists {
		d.log.Debug().
			Str("type", config.Type().String()).
			Str("address", address.String()).
			Msg("recovered existing static instance")
		d.codeCache.Add(address, struct{}{})
		return instance, nil
	}

	deployed, err := d.deployVia(ctx, config)
	if err != nil {
		return mesh.Instance{}, err
	}
	if deployed != address {
		return mesh.Instance{}, fmt.Errorf("backend deployed %s instance at %s, expected content address %s",
			config.Type(), deployed, address)
	}
	d.codeCache.Add(address, struct{}{})
	return instance, nil
}

// deployAggregation deploys every member sequentially, then gets-or-creates
// the wrapping threshold instance over the resulting addresses.
func (d *Deployer) deployAggregation(ctx context.Context, cfg mesh.AggregationConfig) (mesh.Instance, error) {
	// members may share a single submission identity; deploy strictly in
	// order, never in parallel
	resolved := make([]mesh.Config, 0, len(cfg.Members))
	for i, member := range cfg.Members {
		instance, err := d.Deploy(ctx, member)
		if err != nil {
			return mesh.Instance{}, fmt.Errorf("could not deploy aggregation member %d: %w", i, err)
		}
		resolved = append(resolved, mesh.OpaqueReference{Address: instance.Address})
	}
	return d.deployStatic(ctx, mesh.AggregationConfig{
		Threshold: cfg.Threshold,
		Members:   resolved,
	})
}

// deployRouting deploys every referenced sub-config sequentially, deploys
// the owning routing instance, then enrolls each resolved endpoint as part
// of initialization. The enrollments are first-time setup inlined into the
// deploy, not queued mutations. Endpoints unknown to the registry are
// skipped with a warning.
func (d *Deployer) deployRouting(ctx context.Context, cfg mesh.RoutingConfig) (mesh.Instance, error) {
	type enrollment struct {
		endpoint mesh.EndpointID
		instance mesh.Identifier
	}
	enrollments := make([]enrollment, 0, len(cfg.Routes))
	for _, endpoint := range mesh.SortedEndpoints(cfg.Routes) {
		if !d.registry.IsKnown(endpoint) {
			d.log.Warn().
				Str("endpoint", string(endpoint)).
				Msg("skipping route deploy for endpoint unknown to local registry")
			continue
		}
		instance, err := d.Deploy(ctx, cfg.Routes[endpoint])
		if err != nil {
			return mesh.Instance{}, fmt.Errorf("could not deploy route for endpoint %s: %w", endpoint, err)
		}
		enrollments = append(enrollments, enrollment{endpoint: endpoint, instance: instance.Address})
	}

	router, err := d.deployVia(ctx, cfg)
	if err != nil {
		return mesh.Instance{}, err
	}
	for _, e := range enrollments {
		err = d.backend.EnrollRoute(ctx, router, e.endpoint, e.instance)
		if err != nil {
			return mesh.Instance{}, fmt.Errorf("could not enroll route for endpoint %s on fresh router %s: %w",
				e.endpoint, router, err)
		}
	}
	d.log.Info().
		Str("address", router.String()).
		Int("routes", len(enrollments)).
		Msg("deployed routing instance")
	return mesh.Instance{Address: router, Type: mesh.ModuleTypeRouting, Mutable: true}, nil
}

// deployFresh deploys an owned, mutable module. Such instances are created
// once and mutated in place for their lifetime, so no content-addressed
// recovery applies.
func (d *Deployer) deployFresh(ctx context.Context, config mesh.Config) (mesh.Instance, error) {
	address, err := d.deployVia(ctx, config)
	if err != nil {
		return mesh.Instance{}, err
	}
	d.log.Info().
		Str("type", config.Type().String()).
		Str("address", address.String()).
		Msg("deployed mutable instance")
	return mesh.Instance{Address: address, Type: config.Type(), Mutable: true}, nil
}

func (d *Deployer) deployVia(ctx context.Context, config mesh.Config) (mesh.Identifier, error) {
	factory, ok := d.factories[config.Type()]
	if !ok {
		return mesh.ZeroIdentifier, fmt.Errorf("no deploy factory registered for module type %s", config.Type())
	}
	address, err := factory(ctx, config)
	if err != nil {
		return mesh.ZeroIdentifier, fmt.Errorf("could not deploy %s instance: %w", config.Type(), err)
	}
	return address, nil
}
