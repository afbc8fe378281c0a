package cmd

import (
	"errors"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	"github.com/projecteru2/vmreport/devices"
	"github.com/projecteru2/vmreport/inventory"
	"github.com/projecteru2/vmreport/report"
)

var disksCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disks",
		Short: "List virtual disks with their SCSI controller and bus:unit address",
		Args:  cobra.NoArgs,
		RunE:  runDisks,
	}
	cmd.Flags().StringP("vmname", "v", "", "name of the virtual machine (all VMs if omitted)")
	cmd.Flags().String("scsi-variants", devices.DefaultVariants.String(), "comma separated SCSI controller variants to report (lsilogic, lsilogic-sas, pvscsi, buslogic, all)")
	cmd.Flags().Bool("human", false, "print disk sizes in human readable units")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	return cmd
}()

func runDisks(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	vmName, _ := cmd.Flags().GetString("vmname")
	variantsStr, _ := cmd.Flags().GetString("scsi-variants")
	human, _ := cmd.Flags().GetBool("human")
	asJSON, _ := cmd.Flags().GetBool("json")

	variants, err := devices.ParseVariants(variantsStr)
	if err != nil {
		return err
	}

	ctx, sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx) //nolint:errcheck

	vms, err := inventory.ListVMs(ctx, sess.Client(), inventory.DiskProps)
	if err != nil {
		return err
	}
	vms, err = inventory.Select(vms, vmName)
	if errors.Is(err, inventory.ErrNotFound) {
		log.WithFunc("cmd.disks").Warnf(ctx, "VM %s not found", vmName)
		return nil
	}
	if err != nil {
		return err
	}

	opts := report.DiskOptions{Variants: variants, Human: human}
	if asJSON {
		return report.WriteDisksJSON(ctx, cmd.OutOrStdout(), vms, opts)
	}
	return report.WriteDisksText(ctx, cmd.OutOrStdout(), vms, opts)
}
