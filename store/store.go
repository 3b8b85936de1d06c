// Package store expõe as coleções do MongoDB atrás de interfaces pequenas,
// uma por entidade. Cada operação é uma mutação/leitura atômica de documento;
// nenhuma invariante depende de lock em processo.
package store

import (
	"context"
	"errors"
	"time"

	"blogapi/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound — documento inexistente.
	ErrNotFound = errors.New("not found")
	// ErrConflict — violação de unicidade (e-mail/nome já cadastrado).
	ErrConflict = errors.New("conflict")
)

// UserStore persiste contas de usuário.
type UserStore interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByNameOrEmail cobre a checagem de duplicidade do cadastro.
	ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error)
	// SetRefreshToken sobrescreve o refresh token ativo (ponto de rotação).
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	// ClearRefreshToken remove o campo por completo ($unset).
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	UpdateAccount(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error)
}

// BlogStore persiste blogs e a listagem denormalizada por usuário.
type BlogStore interface {
	Create(ctx context.Context, blog models.Blog) (*models.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.BlogWithOwner, error)
}

// CommentStore persiste comentários e a listagem denormalizada por blog.
type CommentStore interface {
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	Update(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.CommentWithTitle, error)
}

// LikeStore persiste likes e os read models de "curtidos por mim".
type LikeStore interface {
	FindBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) (*models.Like, error)
	CreateBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) (*models.Like, error)
	DeleteBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) error
	FindCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*models.Like, error)
	CreateCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*models.Like, error)
	DeleteCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) error
	LikedBlogs(ctx context.Context, userID primitive.ObjectID) ([]models.LikedBlog, error)
	LikedComments(ctx context.Context, userID primitive.ObjectID) ([]models.LikedComment, error)
}

// OtpStore persiste o código pendente de reset (um por usuário).
type OtpStore interface {
	// Upsert cria ou sobrescreve o código do usuário, zerando is_verified.
	Upsert(ctx context.Context, userID primitive.ObjectID, code string, issuedAt time.Time) error
	Find(ctx context.Context, userID primitive.ObjectID) (*models.Otp, error)
	MarkVerified(ctx context.Context, userID primitive.ObjectID) error
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

// Stores agrupa as interfaces para injeção nos controllers.
type Stores struct {
	Users    UserStore
	Blogs    BlogStore
	Comments CommentStore
	Likes    LikeStore
	Otps     OtpStore
}
