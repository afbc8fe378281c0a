package devices

import (
	"context"

	"github.com/projecteru2/core/log"
	"github.com/vmware/govmomi/object"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/projecteru2/vmreport/types"
)

// Layout is the result of one classification pass over a VM's devices.
type Layout struct {
	// Seen lists the recognized devices in device order.
	Seen        []Kind
	Controllers map[int32]*types.Controller
	Disks       []*types.Disk
}

// Extract classifies devices and collects accepted SCSI controllers (by key)
// and virtual disks (in device order). IDE controllers are only recorded in
// Seen; everything else is skipped.
func Extract(ctx context.Context, list object.VirtualDeviceList, accept Variants) *Layout {
	logger := log.WithFunc("devices.Extract")
	layout := &Layout{Controllers: map[int32]*types.Controller{}}
	for _, dev := range list {
		d := Classify(dev)
		switch d.Kind {
		case KindIDEController:
			layout.Seen = append(layout.Seen, d.Kind)
		case KindSCSIController:
			if !accept.Accepts(d.Variant) {
				logger.Debugf(ctx, "skip %s SCSI controller %d", d.Variant, dev.GetVirtualDevice().Key)
				continue
			}
			layout.Seen = append(layout.Seen, d.Kind)
			ctrl := toController(dev, d.Variant)
			layout.Controllers[ctrl.Key] = ctrl
		case KindVirtualDisk:
			layout.Seen = append(layout.Seen, d.Kind)
			layout.Disks = append(layout.Disks, toDisk(dev.(*vimtypes.VirtualDisk)))
		default:
			logger.Debugf(ctx, "skip device %d (%s)", dev.GetVirtualDevice().Key, list.Type(dev))
		}
	}
	return layout
}

func toController(dev vimtypes.BaseVirtualDevice, variant string) *types.Controller {
	sc := dev.(vimtypes.BaseVirtualSCSIController).GetVirtualSCSIController()
	return &types.Controller{
		Name:          Label(dev),
		Key:           sc.Key,
		ControllerKey: sc.ControllerKey,
		BusNumber:     sc.BusNumber,
		Variant:       variant,
	}
}

func toDisk(d *vimtypes.VirtualDisk) *types.Disk {
	var unit int32
	if d.UnitNumber != nil {
		unit = *d.UnitNumber
	}
	return &types.Disk{
		Name:          Label(d),
		Key:           d.Key,
		ControllerKey: d.ControllerKey,
		UnitNumber:    unit,
		CapacityBytes: d.CapacityInBytes,
	}
}
