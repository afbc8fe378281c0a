package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/mo"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/projecteru2/vmreport/devices"
	"github.com/projecteru2/vmreport/types"
)

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func guestVM(name, running, version, versionStatus string) mo.VirtualMachine {
	var vm mo.VirtualMachine
	vm.Name = name
	vm.Guest = &vimtypes.GuestInfo{
		ToolsRunningStatus:  running,
		ToolsVersion:        version,
		ToolsVersionStatus2: versionStatus,
	}
	return vm
}

func TestWriteToolsRowFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	vm := guestVM("web01", "toolsOk", "10346", "guestToolsCurrent")
	require.NoError(t, WriteToolsRow(&buf, ToolsStatusOf(&vm)))

	want := pad("web01", 20) + " " + pad("toolsOk", 30) + " " + pad("10346", 30) + " " + pad("guestToolsCurrent", 20) + "\n"
	assert.Equal(t, want, buf.String())
	assert.Len(t, strings.TrimSuffix(buf.String(), "\n"), 20+1+30+1+30+1+20)
}

func TestWriteToolsRowLongValuesNotTruncated(t *testing.T) {
	var buf bytes.Buffer
	name := "a-very-long-virtual-machine-name"
	vm := guestVM(name, "guestToolsRunning", "12352", "guestToolsSupportedOld")
	require.NoError(t, WriteToolsRow(&buf, ToolsStatusOf(&vm)))
	assert.True(t, strings.HasPrefix(buf.String(), name+" guestToolsRunning"))
	assert.True(t, strings.HasSuffix(buf.String(), "guestToolsSupportedOld\n"))
}

func TestWriteToolsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteToolsHeader(&buf))
	want := pad("Name", 20) + " " + pad("Status", 30) + " " + pad("Version", 30) + " " + pad("Version Status", 20) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestToolsStatusNoGuest(t *testing.T) {
	var vm mo.VirtualMachine
	vm.Name = "template01"
	assert.Equal(t, types.ToolsStatus{Name: "template01"}, ToolsStatusOf(&vm))
}

func TestWriteToolsTableOrder(t *testing.T) {
	vms := []mo.VirtualMachine{
		guestVM("b", "guestToolsRunning", "1", "guestToolsCurrent"),
		guestVM("a", "guestToolsNotRunning", "2", "guestToolsNeedUpgrade"),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteToolsTable(&buf, vms))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Name "))
	assert.True(t, strings.HasPrefix(lines[1], "b "))
	assert.True(t, strings.HasPrefix(lines[2], "a "))
}

func ptr[T any](v T) *T { return &v }

func diskVM(name string, devs ...vimtypes.BaseVirtualDevice) mo.VirtualMachine {
	var vm mo.VirtualMachine
	vm.Name = name
	vm.Config = &vimtypes.VirtualMachineConfigInfo{
		Hardware: vimtypes.VirtualHardware{Device: devs},
	}
	return vm
}

func lsiLogic(key, bus int32) *vimtypes.VirtualLsiLogicController {
	return &vimtypes.VirtualLsiLogicController{VirtualSCSIController: vimtypes.VirtualSCSIController{
		VirtualController: vimtypes.VirtualController{
			VirtualDevice: vimtypes.VirtualDevice{Key: key, DeviceInfo: &vimtypes.Description{Label: "SCSI controller 0"}},
			BusNumber:     bus,
		},
	}}
}

func pvscsi(key, bus int32) *vimtypes.ParaVirtualSCSIController {
	return &vimtypes.ParaVirtualSCSIController{VirtualSCSIController: vimtypes.VirtualSCSIController{
		VirtualController: vimtypes.VirtualController{
			VirtualDevice: vimtypes.VirtualDevice{Key: key, DeviceInfo: &vimtypes.Description{Label: "SCSI controller 1"}},
			BusNumber:     bus,
		},
	}}
}

func ide(key int32) *vimtypes.VirtualIDEController {
	return &vimtypes.VirtualIDEController{VirtualController: vimtypes.VirtualController{
		VirtualDevice: vimtypes.VirtualDevice{Key: key},
	}}
}

func disk(key, ctrl, unit int32, label string, size int64) *vimtypes.VirtualDisk {
	return &vimtypes.VirtualDisk{
		VirtualDevice: vimtypes.VirtualDevice{
			Key: key, ControllerKey: ctrl, UnitNumber: ptr(unit),
			DeviceInfo: &vimtypes.Description{Label: label},
		},
		CapacityInBytes: size,
	}
}

func TestWriteDisksText(t *testing.T) {
	vms := []mo.VirtualMachine{
		diskVM("app02",
			ide(200), ide(201),
			lsiLogic(1000, 0),
			disk(2000, 1000, 0, "Hard disk 1", 17179869184),
			disk(2001, 1000, 1, "Hard disk 2", 1073741824),
		),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteDisksText(context.Background(), &buf, vms, DiskOptions{Variants: devices.DefaultVariants}))
	assert.Equal(t, strings.Join([]string{
		"IDE Controller",
		"IDE Controller",
		"SCSI Controller",
		"Virtual Disk",
		"Virtual Disk",
		"Hard disk 1 (Size: 17179869184): 0:0",
		"Hard disk 2 (Size: 1073741824): 0:1",
		"break!",
		"",
	}, "\n"), buf.String())
}

func TestWriteDisksTextHuman(t *testing.T) {
	vms := []mo.VirtualMachine{diskVM("app02", lsiLogic(1000, 0), disk(2000, 1000, 0, "Hard disk 1", 16<<30))}
	var buf bytes.Buffer
	require.NoError(t, WriteDisksText(context.Background(), &buf, vms, DiskOptions{Variants: devices.DefaultVariants, Human: true}))
	assert.Contains(t, buf.String(), "Hard disk 1 (Size: 16GiB): 0:0\n")
}

func TestWriteDisksTextLookupFailure(t *testing.T) {
	vms := []mo.VirtualMachine{
		diskVM("app02",
			lsiLogic(1000, 0),
			pvscsi(1001, 1),
			disk(2000, 1000, 0, "Hard disk 1", 1),
			disk(2001, 1001, 0, "Hard disk 2", 2),
		),
		diskVM("never-reached", lsiLogic(1000, 0)),
	}
	var buf bytes.Buffer
	err := WriteDisksText(context.Background(), &buf, vms, DiskOptions{Variants: devices.DefaultVariants})
	require.ErrorIs(t, err, devices.ErrControllerNotFound)
	assert.Contains(t, err.Error(), "app02")
	assert.Contains(t, buf.String(), "Hard disk 1 (Size: 1): 0:0\n")
	assert.NotContains(t, buf.String(), "Hard disk 2")
	assert.NotContains(t, buf.String(), "break!")
}

func TestWriteDisksTextAllVariants(t *testing.T) {
	vms := []mo.VirtualMachine{diskVM("app02", pvscsi(1001, 1), disk(2001, 1001, 2, "Hard disk 1", 2))}
	var buf bytes.Buffer
	require.NoError(t, WriteDisksText(context.Background(), &buf, vms, DiskOptions{}))
	assert.Equal(t, "SCSI Controller\nVirtual Disk\nHard disk 1 (Size: 2): 1:2\nbreak!\n", buf.String())
}

func TestWriteDisksTextNoConfig(t *testing.T) {
	var vm mo.VirtualMachine
	vm.Name = "orphan"
	var buf bytes.Buffer
	require.NoError(t, WriteDisksText(context.Background(), &buf, []mo.VirtualMachine{vm}, DiskOptions{Variants: devices.DefaultVariants}))
	assert.Equal(t, "break!\n", buf.String())
}

func TestWriteDisksJSON(t *testing.T) {
	vms := []mo.VirtualMachine{diskVM("app02", lsiLogic(1000, 2), disk(2000, 1000, 5, "Hard disk 1", 42))}
	var buf bytes.Buffer
	require.NoError(t, WriteDisksJSON(context.Background(), &buf, vms, DiskOptions{Variants: devices.DefaultVariants}))

	var got []*types.VMDisks
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "app02", got[0].VM)
	require.Len(t, got[0].Disks, 1)
	d := got[0].Disks[0]
	assert.Equal(t, "Hard disk 1", d.Name)
	assert.Equal(t, int64(42), d.CapacityBytes)
	assert.Equal(t, "2:5", d.Info)
	assert.Equal(t, devices.VariantLsiLogic, d.Controller.Variant)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	flat := raw[0]["disks"].([]any)[0].(map[string]any)
	for _, key := range []string{"name", "key", "controller", "bus", "unit", "capacity_bytes"} {
		assert.Contains(t, flat, key)
	}
	assert.Equal(t, "2:5", flat["address"])
}

func TestWriteDisksJSONLookupFailure(t *testing.T) {
	vms := []mo.VirtualMachine{diskVM("app02", disk(2000, 1000, 0, "Hard disk 1", 1))}
	var buf bytes.Buffer
	err := WriteDisksJSON(context.Background(), &buf, vms, DiskOptions{Variants: devices.DefaultVariants})
	require.ErrorIs(t, err, devices.ErrControllerNotFound)
	assert.Empty(t, buf.String())
}
