package datasource

// BatchSize is the number of users requested per session
const BatchSize = 50

// response is the wire shape of the random-user endpoint
type response struct {
	Results []apiUser `json:"results"`
	Error   string    `json:"error,omitempty"`
}

type apiUser struct {
	Name struct {
		Title string `json:"title"`
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Login struct {
		Username string `json:"username"`
	} `json:"login"`
	Email string `json:"email"`
	Dob   struct {
		Date string `json:"date"`
	} `json:"dob"`
	Nat     string `json:"nat"`
	Picture struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"picture"`
}
