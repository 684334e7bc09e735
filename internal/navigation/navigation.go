package navigation

// Route names a page the application serves.
type Route string

const (
	Landing   Route = "landing"
	Dashboard Route = "dashboard"
	Search    Route = "search"
	ImageGen  Route = "image-gen"
	Login     Route = "login"
	Register  Route = "register"
)

var paths = map[Route]string{
	Landing:   "/",
	Dashboard: "/dashboard",
	Search:    "/search",
	ImageGen:  "/image-gen",
	Login:     "/login",
	Register:  "/register",
}

// Entry is one row of the route table.
type Entry struct {
	Route Route  `json:"route"`
	Path  string `json:"path"`
}

// Routes returns the route table in a stable order.
func Routes() []Entry {
	order := []Route{Landing, Dashboard, Search, ImageGen, Login, Register}
	entries := make([]Entry, len(order))
	for i, r := range order {
		entries[i] = Entry{Route: r, Path: paths[r]}
	}
	return entries
}

// Path returns the URL path of r, or "/" for an unknown route.
func (r Route) Path() string {
	if p, ok := paths[r]; ok {
		return p
	}
	return paths[Landing]
}

// Item is a link in the navigation bar.
type Item struct {
	Label  string
	Path   string
	Active bool
}

var barRoutes = []struct {
	label string
	route Route
}{
	{"Dashboard", Dashboard},
	{"Web Search", Search},
	{"Image Gen", ImageGen},
}

// Items builds the navigation bar for the page at currentPath.
func Items(currentPath string) []Item {
	items := make([]Item, len(barRoutes))
	for i, b := range barRoutes {
		p := b.route.Path()
		items[i] = Item{Label: b.label, Path: p, Active: p == currentPath}
	}
	return items
}
