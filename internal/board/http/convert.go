package http

import (
	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/pkg/boardsdk"
)

func toPost(p domain.Post) boardsdk.Post {
	return boardsdk.Post{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		VideoID:  p.VideoID,
		Module:   p.ModuleCode,
		Author:   p.Author,
		PostedAt: p.Stamp(),
		Version:  p.Version,
	}
}

func toPosts(ps []domain.Post) []boardsdk.Post {
	out := make([]boardsdk.Post, len(ps))
	for i, p := range ps {
		out[i] = toPost(p)
	}
	return out
}

func toPostDetail(d domain.PostDetail) boardsdk.PostDetail {
	comments := make([]boardsdk.Comment, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = boardsdk.Comment{
			ID:       c.ID,
			PostID:   c.PostID,
			Content:  c.Content,
			Author:   c.Author,
			PostedAt: c.Stamp(),
		}
	}
	return boardsdk.PostDetail{Post: toPost(d.Post), Comments: comments}
}

func toUserRole(ur domain.UserRole) boardsdk.UserRole {
	return boardsdk.UserRole{UserID: ur.User.ID, Email: ur.User.Email, Role: ur.Role}
}
