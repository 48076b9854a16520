package constants

const (
	Create = "CREATE"
	Update = "UPDATE"
	Delete = "DELETE"
	Mark   = "MARK"
)
