package website

import (
	"errors"
	"io"
	"net/http"
	"time"

	"git.noga.studio/noga/site/src/assets"
	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
)

type AdminBlogListData struct {
	AdminBaseData

	Posts  []AdminBlogListItem
	NewUrl string
}

type AdminBlogListItem struct {
	Title     string
	Slug      string
	Date      string
	EditUrl   string
	DeleteUrl string
	PublicUrl string
}

func AdminBlogList(c *RequestContext) ResponseData {
	locale := adminLocale(c)

	posts, err := content.FetchBlogPostsForEdit(c, c.Conn, locale)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch blog posts"))
	}

	data := AdminBlogListData{
		AdminBaseData: getAdminBaseData(c, ""),
		NewUrl:        siteurl.BuildAdminBlogNew() + "?locale=" + locale,
	}
	for _, post := range posts {
		data.Posts = append(data.Posts, AdminBlogListItem{
			Title:     post.Title,
			Slug:      post.Slug,
			Date:      content.FormatDate(post.PublishedAt, locale),
			EditUrl:   siteurl.BuildAdminBlogEdit(post.Slug) + "?locale=" + locale,
			DeleteUrl: siteurl.BuildAdminBlogDelete(post.Slug),
			PublicUrl: siteurl.BuildBlogPost(post.Slug),
		})
	}

	var res ResponseData
	res.MustWriteTemplate("admin_blog_list.html", data)
	return res
}

type AdminBlogEditData struct {
	AdminBaseData

	Post      models.BlogPost
	Date      string
	IsNew     bool
	SaveUrl   string
	UploadUrl string
}

func AdminBlogNew(c *RequestContext) ResponseData {
	locale := adminLocale(c)

	data := AdminBlogEditData{
		AdminBaseData: getAdminBaseData(c, ""),
		Post:          models.BlogPost{Locale: locale},
		Date:          content.FormatDate(time.Now(), locale),
		IsNew:         true,
		SaveUrl:       siteurl.BuildAdminBlogEdit("new"),
		UploadUrl:     siteurl.BuildAdminBlogUpload(),
	}

	var res ResponseData
	res.MustWriteTemplate("admin_blog_edit.html", data)
	return res
}

func AdminBlogEdit(c *RequestContext) ResponseData {
	slug := c.PathParams["slug"]
	locale := adminLocale(c)

	post, err := content.FetchBlogPostForEdit(c, c.Conn, slug, locale)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch blog post"))
	}

	data := AdminBlogEditData{
		AdminBaseData: getAdminBaseData(c, ""),
		Post:          *post,
		Date:          content.FormatDate(post.PublishedAt, locale),
		SaveUrl:       siteurl.BuildAdminBlogEdit(slug),
		UploadUrl:     siteurl.BuildAdminBlogUpload(),
	}

	var res ResponseData
	res.MustWriteTemplate("admin_blog_edit.html", data)
	return res
}

func AdminBlogSave(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to parse form"))
	}
	locale := adminFormLocale(form)

	slug := content.NormalizeSlug(form.Get("slug"))
	if !content.IsValidSlug(slug) {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(nil, "invalid slug"))
	}

	publishedAt, err := content.ParseDate(form.Get("published_at"), locale)
	if err != nil {
		publishedAt = time.Now()
	}

	post := models.BlogPost{
		Slug:            slug,
		Locale:          locale,
		Title:           form.Get("title"),
		Subtitle:        form.Get("subtitle"),
		Excerpt:         form.Get("excerpt"),
		Content:         content.NormalizeContent(form.Get("content")),
		ReadTime:        form.Get("read_time"),
		OgImage:         form.Get("og_image"),
		MetaTitle:       form.Get("meta_title"),
		MetaDescription: form.Get("meta_description"),
		PublishedAt:     publishedAt,
	}

	err = content.SaveBlogPost(c, c.Conn, post)
	if err != nil {
		if errors.Is(err, content.ErrInvalidSlug) {
			return c.ErrorResponse(http.StatusBadRequest, err)
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to save blog post"))
	}

	return c.Redirect(siteurl.BuildAdminBlogEdit(slug)+"?locale="+locale+"&saved=1", http.StatusSeeOther)
}

func AdminBlogDelete(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to parse form"))
	}
	locale := adminFormLocale(form)

	err = content.DeleteBlogPost(c, c.Conn, c.PathParams["slug"], locale)
	if err != nil && !errors.Is(err, db.NotFound) {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete blog post"))
	}

	return c.Redirect(siteurl.BuildAdminBlog()+"?locale="+locale, http.StatusSeeOther)
}

// AdminBlogUpload receives an image from the blog editor and returns the
// public URL of the stored copy as JSON.
func AdminBlogUpload(c *RequestContext) ResponseData {
	file, header, err := c.Req.FormFile("file")
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, oops.New(err, "failed to read uploaded file"))
	}
	defer file.Close()

	if header.Size > assets.MaxUploadSize {
		return uploadError(http.StatusBadRequest, "file is too large")
	}

	data, err := io.ReadAll(io.LimitReader(file, assets.MaxUploadSize+1))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to read uploaded file"))
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := assets.ExtensionForContentType(contentType); !ok {
		contentType = assets.ContentTypeForFilename(header.Filename)
	}
	if contentType == "" {
		return uploadError(http.StatusBadRequest, "unsupported file type")
	}

	slug := content.NormalizeSlug(c.Req.FormValue("slug"))
	if slug == "" {
		slug = "untitled"
	}

	url, err := assets.Create(c, assets.CreateInput{
		Content:     data,
		Filename:    header.Filename,
		ContentType: contentType,
		Locale:      adminFormLocale(c.Req.Form),
		Slug:        slug,
	})
	if err != nil {
		var invalid assets.InvalidAssetError
		if errors.As(err, &invalid) {
			return uploadError(http.StatusBadRequest, invalid.Error())
		}
		if errors.Is(err, assets.ErrStorageNotConfigured) {
			return uploadError(http.StatusServiceUnavailable, "image storage is not configured")
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to upload image"))
	}

	var res ResponseData
	res.WriteJson(map[string]string{"url": url})
	return res
}

func uploadError(status int, message string) ResponseData {
	var res ResponseData
	res.StatusCode = status
	res.WriteJson(map[string]string{"error": message})
	return res
}
