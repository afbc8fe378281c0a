package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/mo"
)

// VirtualMachineType is the managed object type walked by every report.
const VirtualMachineType = "VirtualMachine"

var ErrNotFound = errors.New("VM not found")

// Property sets retrieved for each report. "name" is always included.
var (
	DiskProps  = []string{"name", "config.hardware.device"}
	ToolsProps = []string{"name", "guest"}
)

// WithContainerView creates a recursive container view of kinds rooted at
// the inventory root folder, calls fn, and destroys the view.
// The view is destroyed even if fn fails; a destroy error is logged only.
func WithContainerView(ctx context.Context, c *vim25.Client, kinds []string, fn func(*view.ContainerView) error) error {
	v, err := view.NewManager(c).CreateContainerView(ctx, c.ServiceContent.RootFolder, kinds, true)
	if err != nil {
		return fmt.Errorf("create container view: %w", err)
	}
	defer func() {
		// destroy even when the caller's context was canceled, otherwise the view leaks on the server.
		if derr := v.Destroy(context.WithoutCancel(ctx)); derr != nil {
			log.WithFunc("inventory.WithContainerView").Warnf(ctx, "destroy view %s: %v", v.Reference().Value, derr)
		}
	}()
	return fn(v)
}

// ListVMs returns every VM reachable from the root folder with props populated.
// Order is whatever the server returns.
func ListVMs(ctx context.Context, c *vim25.Client, props []string) ([]mo.VirtualMachine, error) {
	var vms []mo.VirtualMachine
	err := WithContainerView(ctx, c, []string{VirtualMachineType}, func(v *view.ContainerView) error {
		return v.Retrieve(ctx, []string{VirtualMachineType}, props, &vms)
	})
	if err != nil {
		return nil, fmt.Errorf("list VMs: %w", err)
	}
	log.WithFunc("inventory.ListVMs").Debugf(ctx, "retrieved %d VMs", len(vms))
	return vms, nil
}

// FindVM returns the first VM whose name is exactly name.
func FindVM(ctx context.Context, c *vim25.Client, name string, props []string) (*mo.VirtualMachine, error) {
	vms, err := ListVMs(ctx, c, props)
	if err != nil {
		return nil, err
	}
	return FilterByName(vms, name)
}

// FilterByName returns the first entry of vms named name, or ErrNotFound.
func FilterByName(vms []mo.VirtualMachine, name string) (*mo.VirtualMachine, error) {
	for i := range vms {
		if vms[i].Name == name {
			return &vms[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Select returns all of vms when name is empty, otherwise the single match.
func Select(vms []mo.VirtualMachine, name string) ([]mo.VirtualMachine, error) {
	if name == "" {
		return vms, nil
	}
	vm, err := FilterByName(vms, name)
	if err != nil {
		return nil, err
	}
	return []mo.VirtualMachine{*vm}, nil
}
