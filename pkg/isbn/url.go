package isbn

// DefaultBaseURL is used when the caller does not supply a usable base URL.
const DefaultBaseURL = "https://amzn.com/"

// minBaseURLLength is the length below which a base URL is ignored.
const minBaseURLLength = 10

// BookURL appends the ISBN-10 form of isbn to baseURL. Retailers key book pages
// on the 10 digit form, so an ISBN-13 is converted first.
//
// It returns ErrNull, ErrEmpty or ErrInvalid when isbn cannot be used.
func BookURL(baseURL string, isbn *string) (string, error) {
	id, err := Normalize(isbn)
	if err != nil {
		return "", err
	}
	if !Validate(id) {
		return "", ErrInvalid
	}
	if len(id) > 10 {
		id = to10(id)
	}
	if len(baseURL) < minBaseURLLength {
		baseURL = DefaultBaseURL
	}
	return baseURL + id, nil
}
