package domain

// Filter narrows the visible todos by completion. Only completed and active
// narrow the list; the other values are accepted and keep everything.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterActive    Filter = "active"
	FilterPending   Filter = "pending"
	FilterLow       Filter = Filter(PriorityLow)
	FilterMedium    Filter = Filter(PriorityMedium)
	FilterHigh      Filter = Filter(PriorityHigh)
)

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterActive, FilterPending, FilterLow, FilterMedium, FilterHigh:
		return true
	}
	return false
}

type SortBy string

const (
	SortNewest   SortBy = "newest"
	SortOldest   SortBy = "oldest"
	SortPriority SortBy = "priority"
	SortManual   SortBy = "manual"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriority, SortManual:
		return true
	}
	return false
}

type ViewState struct {
	Filter      Filter
	SearchQuery string
	SortBy      SortBy
}

type Stats struct {
	Total        int
	Completed    int
	Pending      int
	HighPriority int
}
