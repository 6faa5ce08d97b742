package media

const (
	ContentTypeApplicationJson = "application/json"
	ContentTypeTextPlain       = "text/plain; charset=utf-8"
	ContentTypeTextHtml        = "text/html; charset=utf-8"
	ContentTypeFormUrlencoded  = "application/x-www-form-urlencoded"

	HeaderXRequestId = "X-Request-Id"
)
