package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vmreport/inventory"
	"github.com/projecteru2/vmreport/report"
)

var toolsCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Show VMware Tools status for one or all VMs",
		Args:  cobra.NoArgs,
		RunE:  runTools,
	}
	cmd.Flags().StringP("vmname", "v", "", "name of the virtual machine to get VMware Tools status from")
	return cmd
}()

func runTools(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	vmName, _ := cmd.Flags().GetString("vmname")
	out := cmd.OutOrStdout()

	ctx, sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx) //nolint:errcheck

	if vmName == "" {
		vms, err := inventory.ListVMs(ctx, sess.Client(), inventory.ToolsProps)
		if err != nil {
			return err
		}
		return report.WriteToolsTable(out, vms)
	}

	_, _ = fmt.Fprintf(out, "Searching for VM %s\n", vmName)
	vm, err := inventory.FindVM(ctx, sess.Client(), vmName, inventory.ToolsProps)
	if errors.Is(err, inventory.ErrNotFound) {
		_, _ = fmt.Fprintln(out, "VM not found")
		return nil
	}
	if err != nil {
		return err
	}
	if err := report.WriteToolsHeader(out); err != nil {
		return err
	}
	return report.WriteToolsRow(out, report.ToolsStatusOf(vm))
}
