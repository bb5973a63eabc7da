package website

import (
	"net/http"
)

func FourOhFour(c *RequestContext) ResponseData {
	var res ResponseData
	res.StatusCode = http.StatusNotFound

	if c.Req.Header["Accept"] != nil && len(c.Req.Header["Accept"]) > 0 && c.Req.Header["Accept"][0] == "application/json" {
		res.WriteJson(map[string]string{"error": "not found"})
		return res
	}

	res.MustWriteTemplate("404.html", getBaseData(c, "Not Found"))
	return res
}
