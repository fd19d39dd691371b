package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossmesh/crossmesh/deploy"
	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
	"github.com/crossmesh/crossmesh/reconcile"
	"github.com/crossmesh/crossmesh/registry"
)

var planFlags struct {
	registryPath string
	desiredPath  string
	actualPath   string
	endpoint     string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "compute the mutation plan converging an instance to its desired config, without submitting anything",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFlags.registryPath, "registry", "", "path to the endpoint registry YAML")
	planCmd.Flags().StringVar(&planFlags.desiredPath, "desired", "", "path to the desired config YAML")
	planCmd.Flags().StringVar(&planFlags.actualPath, "actual", "", "path to an actual-state snapshot YAML (omit to preview an initial deployment)")
	planCmd.Flags().StringVar(&planFlags.endpoint, "endpoint", "", "local endpoint the module lives on")
	_ = planCmd.MarkFlagRequired("registry")
	_ = planCmd.MarkFlagRequired("desired")
	_ = planCmd.MarkFlagRequired("endpoint")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	reg, err := registry.LoadStatic(planFlags.registryPath)
	if err != nil {
		return err
	}
	desiredDoc, err := loadConfigDoc(planFlags.desiredPath)
	if err != nil {
		return err
	}
	desired, err := desiredDoc.toConfig()
	if err != nil {
		return fmt.Errorf("invalid desired config: %w", err)
	}

	var existing *mesh.Instance
	var actual *mesh.DerivedConfig
	if planFlags.actualPath != "" {
		actualDoc, err := loadConfigDoc(planFlags.actualPath)
		if err != nil {
			return err
		}
		actual, err = actualDoc.toDerived()
		if err != nil {
			return fmt.Errorf("invalid actual-state snapshot: %w", err)
		}
		existing = &mesh.Instance{
			Address: actual.Address,
			Type:    actual.Type(),
			Mutable: reconcile.IsMutable(actual.Type()),
		}
	}

	backend := newOfflineBackend(log)
	deployer, err := deploy.NewDeployer(log, backend, reg)
	if err != nil {
		return err
	}
	reconciler := reconcile.NewModuleReconciler(
		log,
		mesh.EndpointID(planFlags.endpoint),
		snapshotReader{snapshot: actual},
		reg,
		deployer,
		existing,
	)

	plan, err := reconciler.Update(cmd.Context(), desired)
	if err != nil {
		return err
	}

	fmt.Printf("status: %s\n", reconciler.Status())
	if instance := reconciler.Instance(); instance != nil {
		fmt.Printf("instance: %s (%s)\n", instance.Address, instance.Type)
	}
	if plan.IsEmpty() {
		fmt.Println("plan: no mutations")
		return nil
	}
	fmt.Printf("plan: %d mutation(s)\n", len(plan))
	for i, mutation := range plan {
		fmt.Printf("  %d. %s\n", i+1, mutation)
	}
	return nil
}

// snapshotReader serves the actual state parsed from the snapshot file.
type snapshotReader struct {
	snapshot *mesh.DerivedConfig
}

var _ module.ConfigReader = snapshotReader{}

func (r snapshotReader) Read(_ context.Context, address mesh.Identifier) (*mesh.DerivedConfig, error) {
	if r.snapshot == nil || r.snapshot.Address != address {
		return nil, module.NewReadFailureErrorf("snapshot does not contain instance %s", address)
	}
	return r.snapshot, nil
}
