package report

import (
	"fmt"
	"io"

	"github.com/vmware/govmomi/vim25/mo"

	"github.com/projecteru2/vmreport/types"
)

// toolsRow pads every column to a fixed width; longer values are not cut.
const toolsRow = "%-20s %-30s %-30s %-20s\n"

// ToolsStatusOf reads the VMware Tools fields off vm's guest info.
// A VM without guest info yields empty fields.
func ToolsStatusOf(vm *mo.VirtualMachine) types.ToolsStatus {
	st := types.ToolsStatus{Name: vm.Name}
	if g := vm.Guest; g != nil {
		st.RunningStatus = g.ToolsRunningStatus
		st.Version = g.ToolsVersion
		st.VersionStatus = g.ToolsVersionStatus2
	}
	return st
}

// WriteToolsHeader writes the column titles.
func WriteToolsHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, toolsRow, "Name", "Status", "Version", "Version Status")
	return err
}

// WriteToolsRow writes one VM's row.
func WriteToolsRow(w io.Writer, st types.ToolsStatus) error {
	_, err := fmt.Fprintf(w, toolsRow, st.Name, st.RunningStatus, st.Version, st.VersionStatus)
	return err
}

// WriteToolsTable writes the header followed by one row per VM, in order.
func WriteToolsTable(w io.Writer, vms []mo.VirtualMachine) error {
	if err := WriteToolsHeader(w); err != nil {
		return err
	}
	for i := range vms {
		if err := WriteToolsRow(w, ToolsStatusOf(&vms[i])); err != nil {
			return err
		}
	}
	return nil
}
