package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vmreport/devices"
	"github.com/projecteru2/vmreport/inventory"
	"github.com/projecteru2/vmreport/report"
	"github.com/projecteru2/vmreport/types"
)

// inspectProps is the union of the disk and tools property sets.
var inspectProps = []string{"name", "config.hardware.device", "guest"}

// vmInspect is the document printed by inspect.
type vmInspect struct {
	Name  string                `json:"name"`
	Tools types.ToolsStatus     `json:"tools"`
	Disks []*types.ResolvedDisk `json:"disks"`
}

var inspectCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect VM",
		Short: "Show VMware Tools status and disk layout of one VM (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().String("scsi-variants", "all", "comma separated SCSI controller variants to report")
	return cmd
}()

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	variantsStr, _ := cmd.Flags().GetString("scsi-variants")
	variants, err := devices.ParseVariants(variantsStr)
	if err != nil {
		return err
	}

	ctx, sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx) //nolint:errcheck

	vm, err := inventory.FindVM(ctx, sess.Client(), args[0], inspectProps)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	disks, err := devices.ResolveAll(report.VMLayout(ctx, vm, variants))
	if err != nil {
		return fmt.Errorf("inspect %s: %w", vm.Name, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(vmInspect{
		Name:  vm.Name,
		Tools: report.ToolsStatusOf(vm),
		Disks: disks,
	})
}
