package department

// Department is identified externally by GUID; ID is the surrogate key.
type Department struct {
	ID   int64  `json:"id"`
	GUID string `json:"guid"`
	Name string `json:"name"`
}
