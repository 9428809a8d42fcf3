package dashboard

const (
	pageLogs      = "logs"
	pageOrders    = "orders"
	pageTemplates = "templates"
)

type navLink struct {
	Name  string
	Title string
}

var nav = []navLink{
	{Name: pageLogs, Title: "Logs"},
	{Name: pageOrders, Title: "Orders"},
	{Name: pageTemplates, Title: "Templates"},
}

type badge struct {
	Status string
	Text   string
}

type row struct {
	ID       string
	Title    string
	Subtitle string
	Meta     string
	Badges   []badge
	Selected bool
}

type filterData struct {
	Key          string
	Label        string
	OperatorText string
	Options      []string
	Selected     string
}

type pageData struct {
	Name          string
	Title         string
	Singular      string
	Plural        string
	Filters       []filterData
	SearchValue   string
	Rows          []row
	Total         int
	ModalOpen     bool
	ModalTitle    string
	ModalJSON     string
	Page          int
	HasPrevious   bool
	HasNext       bool
	Error         string
	Selectable    bool
	SelectedCount int
	Nav           []navLink
}
