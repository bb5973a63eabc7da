package website

import (
	"errors"
	"html/template"
	"net/http"

	"git.noga.studio/noga/site/src/content"
	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"git.noga.studio/noga/site/src/siteurl"
	"git.noga.studio/noga/site/src/templates"
)

type BlogIndexData struct {
	templates.BaseData

	Header models.PageHeader
	Posts  []templates.BlogPostListItem
}

func BlogIndex(c *RequestContext) ResponseData {
	header, err := content.FetchPageHeader(c, c.Conn, content.PageBlog, c.Locale)
	headerVal := contentOrDefault(c, "blog header", header, err, func(locale string) models.PageHeader {
		return content.DefaultPageHeader(content.PageBlog, locale)
	})

	posts, err := content.FetchBlogPosts(c, c.Conn, c.Locale)
	if err != nil {
		// Render the page with an empty list rather than failing it.
		c.Logger.Error().Err(err).Msg("failed to fetch blog posts")
		posts = nil
	}

	data := BlogIndexData{
		BaseData: getBaseData(c, headerVal.Title),
		Header:   headerVal,
	}
	for _, post := range posts {
		data.Posts = append(data.Posts, templates.BlogPostListItem{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Excerpt:  post.Excerpt,
			ReadTime: post.ReadTime,
			Date:     content.FormatDate(post.PublishedAt, c.Locale),
			Url:      siteurl.BuildBlogPost(post.Slug),
		})
	}

	applySeo(c, &data.BaseData, "blog")

	var res ResponseData
	res.MustWriteTemplate("blog_index.html", data)
	return res
}

type BlogPostData struct {
	templates.BaseData

	Post    templates.BlogPost
	BlogUrl string
}

func BlogPost(c *RequestContext) ResponseData {
	slug := c.PathParams["slug"]

	post, err := content.FetchBlogPost(c, c.Conn, slug, c.Locale)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch blog post"))
	}

	baseData := getBaseData(c, post.Title)
	if post.MetaTitle != "" {
		baseData.Title = post.MetaTitle
	}
	baseData.MetaDescription = post.MetaDescription
	baseData.OgImage = post.OgImage

	data := BlogPostData{
		BaseData: baseData,
		Post: templates.BlogPost{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Content:  template.HTML(post.Content),
			ReadTime: post.ReadTime,
			Date:     content.FormatDate(post.PublishedAt, c.Locale),
			OgImage:  post.OgImage,
		},
		BlogUrl: siteurl.BuildBlog(),
	}

	var res ResponseData
	res.MustWriteTemplate("blog_post.html", data)
	return res
}
