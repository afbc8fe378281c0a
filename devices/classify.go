package devices

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vmware/govmomi/object"
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// Kind is the closed set of device classes the disk report cares about.
type Kind int

const (
	KindOther Kind = iota
	KindIDEController
	KindSCSIController
	KindVirtualDisk
)

func (k Kind) String() string {
	switch k {
	case KindIDEController:
		return "IDE Controller"
	case KindSCSIController:
		return "SCSI Controller"
	case KindVirtualDisk:
		return "Virtual Disk"
	default:
		return "Other"
	}
}

// SCSI controller variants, named as object.VirtualDeviceList.Type names them.
const (
	VariantLsiLogic    = "lsilogic"
	VariantLsiLogicSAS = "lsilogic-sas"
	VariantParaVirtual = "pvscsi"
	VariantBusLogic    = "buslogic"

	variantsAll = "all"
)

// DefaultVariants accepts only LSI Logic controllers.
var DefaultVariants = Variants{VariantLsiLogic: {}}

var knownVariants = []string{VariantLsiLogic, VariantLsiLogicSAS, VariantParaVirtual, VariantBusLogic}

// Variants is the set of SCSI controller variants whose disks are reported.
// A nil set accepts every variant.
type Variants map[string]struct{}

// Accepts reports whether controllers of variant v are kept.
func (vs Variants) Accepts(v string) bool {
	if vs == nil {
		return true
	}
	_, ok := vs[v]
	return ok
}

func (vs Variants) String() string {
	if vs == nil {
		return variantsAll
	}
	names := make([]string, 0, len(vs))
	for v := range vs {
		names = append(names, v)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// ParseVariants parses a comma separated variant list. "all" accepts every variant.
func ParseVariants(s string) (Variants, error) {
	vs := Variants{}
	for raw := range strings.SplitSeq(s, ",") {
		v := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case v == "":
			continue
		case v == variantsAll:
			return nil, nil
		case !slices.Contains(knownVariants, v):
			return nil, fmt.Errorf("unknown SCSI controller variant %q (known: %s, %s)", v, strings.Join(knownVariants, ", "), variantsAll)
		}
		vs[v] = struct{}{}
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("no SCSI controller variant given")
	}
	return vs, nil
}

// Device is a classified hardware device.
type Device struct {
	Kind    Kind
	Variant string // SCSI controllers only
	Device  vimtypes.BaseVirtualDevice
}

// Classify maps a hardware device onto Kind. Unknown devices are KindOther.
func Classify(dev vimtypes.BaseVirtualDevice) Device {
	switch dev.(type) {
	case *vimtypes.VirtualIDEController:
		return Device{Kind: KindIDEController, Device: dev}
	case vimtypes.BaseVirtualSCSIController:
		return Device{Kind: KindSCSIController, Variant: object.VirtualDeviceList{}.Type(dev), Device: dev}
	case *vimtypes.VirtualDisk:
		return Device{Kind: KindVirtualDisk, Device: dev}
	default:
		return Device{Kind: KindOther, Device: dev}
	}
}

// Label returns the device's display label, falling back to its generated name.
func Label(dev vimtypes.BaseVirtualDevice) string {
	if d := dev.GetVirtualDevice().DeviceInfo; d != nil {
		if desc := d.GetDescription(); desc != nil && desc.Label != "" {
			return desc.Label
		}
	}
	return object.VirtualDeviceList{}.Name(dev)
}
