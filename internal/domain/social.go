package domain

import (
	"fmt"
	"time"
)

type PostType string

const (
	PostInstagramFeed  PostType = "InstagramFeed"
	PostInstagramStory PostType = "InstagramStory"
	PostInstagramReels PostType = "InstagramReels"
	PostTikTok         PostType = "TikTok"
	PostArticle        PostType = "Article"
)

func ParsePostType(s string) (PostType, error) {
	switch v := PostType(s); v {
	case PostInstagramFeed, PostInstagramStory, PostInstagramReels, PostTikTok, PostArticle:
		return v, nil
	}
	return "", fmt.Errorf("%w: post type %q", ErrInvalidValue, s)
}

type PostStatus string

const (
	PostDraft     PostStatus = "Draft"
	PostScheduled PostStatus = "Scheduled"
	PostPosted    PostStatus = "Posted"
	PostCanceled  PostStatus = "Canceled"
)

func ParsePostStatus(s string) (PostStatus, error) {
	switch v := PostStatus(s); v {
	case PostDraft, PostScheduled, PostPosted, PostCanceled:
		return v, nil
	}
	return "", fmt.Errorf("%w: post status %q", ErrInvalidValue, s)
}

// SocialMediaPost is a planned publication tied to a project.
type SocialMediaPost struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	ClientName    string     `json:"clientName"`
	PostType      PostType   `json:"postType"`
	Platform      string     `json:"platform"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Caption       string     `json:"caption"`
	MediaURL      string     `json:"mediaUrl"`
	Status        PostStatus `json:"status"`
	Notes         string     `json:"notes"`
}

type SocialMediaPostUpdate struct {
	ProjectID     *string     `json:"projectId,omitempty"`
	ClientName    *string     `json:"clientName,omitempty"`
	PostType      *PostType   `json:"postType,omitempty"`
	Platform      *string     `json:"platform,omitempty"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
	Caption       *string     `json:"caption,omitempty"`
	MediaURL      *string     `json:"mediaUrl,omitempty"` // empty clears
	Status        *PostStatus `json:"status,omitempty"`
	Notes         *string     `json:"notes,omitempty"` // empty clears
}
