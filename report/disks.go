package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	units "github.com/docker/go-units"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"

	"github.com/projecteru2/vmreport/devices"
	"github.com/projecteru2/vmreport/types"
)

// diskSeparator terminates each VM's block in the text report.
const diskSeparator = "break!"

// DiskOptions controls how the disk report is rendered.
type DiskOptions struct {
	Variants devices.Variants
	Human    bool // sizes via go-units instead of raw bytes
}

// VMLayout classifies the hardware devices of vm.
func VMLayout(ctx context.Context, vm *mo.VirtualMachine, accept devices.Variants) *devices.Layout {
	var list object.VirtualDeviceList
	if vm.Config != nil {
		list = object.VirtualDeviceList(vm.Config.Hardware.Device)
	}
	return devices.Extract(ctx, list, accept)
}

// WriteDisksText writes the text report for each VM in order: one line per
// recognized device, one line per disk, then the separator.
// A controller lookup failure stops the report after the disks already printed.
func WriteDisksText(ctx context.Context, w io.Writer, vms []mo.VirtualMachine, opts DiskOptions) error {
	for i := range vms {
		layout := VMLayout(ctx, &vms[i], opts.Variants)
		for _, k := range layout.Seen {
			if _, err := fmt.Fprintln(w, k); err != nil {
				return err
			}
		}
		resolved, rerr := devices.ResolveAll(layout)
		for _, d := range resolved {
			if _, err := fmt.Fprintf(w, "%s (Size: %s): %s\n", d.Name, formatSize(d.CapacityBytes, opts.Human), d.Info); err != nil {
				return err
			}
		}
		if rerr != nil {
			return fmt.Errorf("VM %s: %w", vms[i].Name, rerr)
		}
		if _, err := fmt.Fprintln(w, diskSeparator); err != nil {
			return err
		}
	}
	return nil
}

// CollectDisks resolves the disks of every VM. Any lookup failure fails the whole collection.
func CollectDisks(ctx context.Context, vms []mo.VirtualMachine, opts DiskOptions) ([]*types.VMDisks, error) {
	out := make([]*types.VMDisks, 0, len(vms))
	for i := range vms {
		resolved, err := devices.ResolveAll(VMLayout(ctx, &vms[i], opts.Variants))
		if err != nil {
			return nil, fmt.Errorf("VM %s: %w", vms[i].Name, err)
		}
		out = append(out, &types.VMDisks{VM: vms[i].Name, Disks: resolved})
	}
	return out, nil
}

// WriteDisksJSON writes the disk report of vms as one indented JSON document.
func WriteDisksJSON(ctx context.Context, w io.Writer, vms []mo.VirtualMachine, opts DiskOptions) error {
	report, err := CollectDisks(ctx, vms, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func formatSize(bytes int64, human bool) string {
	if human {
		return units.BytesSize(float64(bytes))
	}
	return strconv.FormatInt(bytes, 10)
}
