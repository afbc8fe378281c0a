package types

// Controller is the subset of a SCSI controller needed to address its disks.
type Controller struct {
	Name          string `json:"name"`
	Key           int32  `json:"key"`
	ControllerKey int32  `json:"controller_key"` // parent (PCI) controller
	BusNumber     int32  `json:"bus_number"`
	Variant       string `json:"variant"` // lsilogic, lsilogic-sas, pvscsi, buslogic
}

// Disk is the subset of a virtual disk needed to address it.
type Disk struct {
	Name          string `json:"name"`
	Key           int32  `json:"key"`
	ControllerKey int32  `json:"controller_key"`
	UnitNumber    int32  `json:"unit_number"`
	CapacityBytes int64  `json:"capacity_bytes"`
}

// DiskAddress is a disk joined to its controller.
type DiskAddress struct {
	Controller *Controller `json:"controller"`
	Bus        int32       `json:"bus"`
	Unit       int32       `json:"unit"`
	Info       string      `json:"address"` // "bus:unit"
	Size       *int64      `json:"size,omitempty"`
}
