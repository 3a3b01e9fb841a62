package catalog

import "strings"

// Process is the closed set of processing categories a provider can map to.
type Process int

const (
	ProcessUnrecognized Process = iota
	ProcessNova
	ProcessCinder
)

// Dir returns the collector-tree directory name for the category.
func (p Process) Dir() string {
	switch p {
	case ProcessNova:
		return "nova_compute"
	case ProcessCinder:
		return "cinder_volume"
	default:
		return ""
	}
}

func (p Process) String() string {
	if p == ProcessUnrecognized {
		return "unrecognized"
	}
	return p.Dir()
}

// Classify maps a provider name to its processing category. It is total:
// every name yields a defined outcome. Exempt reports providers that are
// silently skipped rather than checked; OpenStack cinder has no VMware volume
// support, so VMware cinder providers are expected to produce no records.
func Classify(providerName string) (process Process, exempt bool) {
	switch {
	case strings.HasSuffix(providerName, "_nova"):
		return ProcessNova, false
	case strings.HasSuffix(providerName, "_cinder"):
		if strings.Contains(providerName, "VMWARE") {
			return ProcessUnrecognized, true
		}
		return ProcessCinder, false
	default:
		return ProcessUnrecognized, false
	}
}
