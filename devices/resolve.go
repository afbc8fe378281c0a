package devices

import (
	"errors"
	"fmt"

	"github.com/projecteru2/vmreport/types"
	"github.com/projecteru2/vmreport/utils"
)

var ErrControllerNotFound = errors.New("controller not found")

// Resolve joins disk to its owning controller and formats "bus:unit".
func Resolve(disk *types.Disk, controllers map[int32]*types.Controller) (*types.DiskAddress, error) {
	ctrl, err := utils.LookupCopy(controllers, disk.ControllerKey)
	if err != nil {
		return nil, fmt.Errorf("disk %q (key %d): controller %d: %w", disk.Name, disk.Key, disk.ControllerKey, ErrControllerNotFound)
	}
	return &types.DiskAddress{
		Controller: &ctrl,
		Bus:        ctrl.BusNumber,
		Unit:       disk.UnitNumber,
		Info:       fmt.Sprintf("%d:%d", ctrl.BusNumber, disk.UnitNumber),
	}, nil
}

// ResolveAll resolves every disk of layout in order. On a lookup failure it
// returns the disks resolved so far together with the error.
func ResolveAll(layout *Layout) ([]*types.ResolvedDisk, error) {
	out := make([]*types.ResolvedDisk, 0, len(layout.Disks))
	for _, disk := range layout.Disks {
		addr, err := Resolve(disk, layout.Controllers)
		if err != nil {
			return out, err
		}
		out = append(out, &types.ResolvedDisk{Disk: *disk, DiskAddress: *addr})
	}
	return out, nil
}
