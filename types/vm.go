package types

// ToolsStatus is the VMware Tools state of one VM as reported by the guest info.
type ToolsStatus struct {
	Name          string `json:"name"`
	RunningStatus string `json:"running_status"`
	Version       string `json:"version"`
	VersionStatus string `json:"version_status"`
}

// VMDisks is the disk report of one VM.
type VMDisks struct {
	VM    string          `json:"vm"`
	Disks []*ResolvedDisk `json:"disks"`
}

// ResolvedDisk is a disk with its resolved address, encoded as one flat object.
type ResolvedDisk struct {
	Disk
	DiskAddress
}
