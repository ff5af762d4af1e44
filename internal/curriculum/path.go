package curriculum

// Path represents a learner-chosen specialization track. It governs which
// concrete mission occupies the path-specific slots at levels 3 and 4.
type Path string

const (
	PathNone      Path = ""
	PathBusiness  Path = "business"
	PathTechnical Path = "technical"
	PathHybrid    Path = "hybrid"
)

// AllPaths returns the selectable paths in display order.
func AllPaths() []Path {
	return []Path{PathBusiness, PathTechnical, PathHybrid}
}

// ParsePath converts a stored string to a Path. Unknown values map to
// PathNone so that a corrupted record degrades to "no path chosen".
func ParsePath(s string) Path {
	switch Path(s) {
	case PathBusiness, PathTechnical, PathHybrid:
		return Path(s)
	default:
		return PathNone
	}
}

// IsSelected reports whether p is one of the three concrete paths.
func (p Path) IsSelected() bool {
	return p == PathBusiness || p == PathTechnical || p == PathHybrid
}

// DisplayName returns a human-readable name for a path.
func (p Path) DisplayName() string {
	switch p {
	case PathBusiness:
		return "Business Path"
	case PathTechnical:
		return "Technical Path"
	case PathHybrid:
		return "Hybrid Path"
	default:
		return "No Path"
	}
}

// Icon returns the display icon for a path.
func (p Path) Icon() string {
	switch p {
	case PathBusiness:
		return "📊"
	case PathTechnical:
		return "⚙️"
	case PathHybrid:
		return "🔄"
	default:
		return "•"
	}
}
