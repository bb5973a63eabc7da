package content

import (
	"context"
	"errors"
	"time"

	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
)

var ErrInvalidSlug = errors.New("slug contains invalid characters")

// FetchBlogPosts returns published posts for the locale, newest first.
func FetchBlogPosts(ctx context.Context, conn db.ConnOrTx, locale string) ([]*models.BlogPost, error) {
	posts, err := db.Query[models.BlogPost](ctx, conn,
		`
		SELECT *
		FROM blog_posts
		WHERE locale = $1 AND status = $2
		ORDER BY published_at DESC, id DESC
		`,
		locale, models.StatusPublished,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch blog posts")
	}
	for _, post := range posts {
		post.Content = NormalizeContent(post.Content)
	}
	return posts, nil
}

func FetchBlogPost(ctx context.Context, conn db.ConnOrTx, slug string, locale string) (*models.BlogPost, error) {
	post, err := db.QueryOne[models.BlogPost](ctx, conn,
		`
		SELECT *
		FROM blog_posts
		WHERE slug = $1 AND locale = $2 AND status = $3
		`,
		slug, locale, models.StatusPublished,
	)
	if err != nil {
		return nil, err
	}
	post.Content = NormalizeContent(post.Content)
	return post, nil
}

func FetchBlogPostForEdit(ctx context.Context, conn db.ConnOrTx, slug string, locale string) (*models.BlogPost, error) {
	post, err := db.QueryOne[models.BlogPost](ctx, conn,
		`
		SELECT *
		FROM blog_posts
		WHERE slug = $1 AND locale = $2
		`,
		slug, locale,
	)
	if err != nil {
		return nil, err
	}
	post.Content = NormalizeContent(post.Content)
	return post, nil
}

func FetchBlogPostsForEdit(ctx context.Context, conn db.ConnOrTx, locale string) ([]*models.BlogPost, error) {
	posts, err := db.Query[models.BlogPost](ctx, conn,
		`
		SELECT *
		FROM blog_posts
		WHERE locale = $1
		ORDER BY published_at DESC, id DESC
		`,
		locale,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch blog posts")
	}
	return posts, nil
}

// SaveBlogPost upserts a post by (slug, locale). The slug must already be
// normalized; callers run user input through NormalizeSlug first.
func SaveBlogPost(ctx context.Context, conn db.ConnOrTx, post models.BlogPost) error {
	if !IsValidSlug(post.Slug) {
		return ErrInvalidSlug
	}

	_, err := conn.Exec(ctx,
		`
		INSERT INTO blog_posts (slug, locale, status, title, subtitle, excerpt, content, read_time, og_image, meta_title, meta_description, published_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (slug, locale) DO UPDATE SET
			status = EXCLUDED.status,
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			excerpt = EXCLUDED.excerpt,
			content = EXCLUDED.content,
			read_time = EXCLUDED.read_time,
			og_image = EXCLUDED.og_image,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			published_at = EXCLUDED.published_at,
			updated_at = EXCLUDED.updated_at
		`,
		post.Slug, post.Locale, models.StatusPublished,
		post.Title, post.Subtitle, post.Excerpt, post.Content,
		post.ReadTime, post.OgImage, post.MetaTitle, post.MetaDescription,
		post.PublishedAt, time.Now(),
	)
	if err != nil {
		return oops.New(err, "failed to save blog post")
	}
	return nil
}

func DeleteBlogPost(ctx context.Context, conn db.ConnOrTx, slug string, locale string) error {
	tag, err := conn.Exec(ctx, "DELETE FROM blog_posts WHERE slug = $1 AND locale = $2", slug, locale)
	if err != nil {
		return oops.New(err, "failed to delete blog post")
	}
	if tag.RowsAffected() < 1 {
		return db.NotFound
	}
	return nil
}
