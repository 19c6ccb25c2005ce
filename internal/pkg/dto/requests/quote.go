package requests

type GetQuoteByDate struct {
	Date string `validate:"required,datetime=2006-01-02"`
}
