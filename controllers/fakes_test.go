package controllers_test

// In-memory fakes dos stores e do mail sender, usados pelos testes HTTP.
// Reproduzem a semântica atômica por documento do MongoDB (uma mutação
// por chamada), sem rede.

import (
	"context"
	"sync"
	"time"

	"blogapi/models"
	"blogapi/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]models.User)}
}

func (f *fakeUsers) Create(_ context.Context, user models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, store.ErrConflict
		}
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) ExistsByNameOrEmail(_ context.Context, name, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Name == name || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) SetRefreshToken(_ context.Context, id primitive.ObjectID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.RefreshToken = token
	f.users[id] = u
	return nil
}

func (f *fakeUsers) ClearRefreshToken(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.RefreshToken = ""
	f.users[id] = u
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Password = passwordHash
	f.users[id] = u
	return nil
}

func (f *fakeUsers) UpdateAccount(_ context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for otherID, other := range f.users {
		if otherID != id && other.Email == email {
			return nil, store.ErrConflict
		}
	}
	u.Name = name
	u.Email = email
	f.users[id] = u
	return &u, nil
}

type fakeBlogs struct {
	mu    sync.Mutex
	blogs map[primitive.ObjectID]models.Blog
	users *fakeUsers
}

func newFakeBlogs(users *fakeUsers) *fakeBlogs {
	return &fakeBlogs{blogs: make(map[primitive.ObjectID]models.Blog), users: users}
}

func (f *fakeBlogs) Create(_ context.Context, blog models.Blog) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	blog.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	f.blogs[blog.ID] = blog
	return &blog, nil
}

func (f *fakeBlogs) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.blogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBlogs) Update(_ context.Context, id primitive.ObjectID, title, content string) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.blogs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if title != "" {
		b.Title = title
	}
	if content != "" {
		b.Content = content
	}
	b.UpdatedAt = time.Now().UTC()
	f.blogs[id] = b
	return &b, nil
}

func (f *fakeBlogs) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogs) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.BlogWithOwner, error) {
	owner, err := f.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.BlogWithOwner
	for _, b := range f.blogs {
		if b.UserID == userID {
			out = append(out, models.BlogWithOwner{Blog: b, Owner: models.BlogOwner{Name: owner.Name}})
		}
	}
	return out, nil
}

type fakeComments struct {
	mu       sync.Mutex
	comments map[primitive.ObjectID]models.Comment
	blogs    *fakeBlogs
}

func newFakeComments(blogs *fakeBlogs) *fakeComments {
	return &fakeComments{comments: make(map[primitive.ObjectID]models.Comment), blogs: blogs}
}

func (f *fakeComments) Create(_ context.Context, comment models.Comment) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	comment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	f.comments[comment.ID] = comment
	return &comment, nil
}

func (f *fakeComments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cm, ok := f.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &cm, nil
}

func (f *fakeComments) Update(_ context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cm, ok := f.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cm.Comment = text
	cm.UpdatedAt = time.Now().UTC()
	f.comments[id] = cm
	return &cm, nil
}

func (f *fakeComments) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeComments) ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.CommentWithTitle, error) {
	blog, err := f.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.CommentWithTitle
	for _, cm := range f.comments {
		if cm.BlogID == blogID {
			out = append(out, models.CommentWithTitle{Comment: cm, Title: blog.Title})
		}
	}
	return out, nil
}

type fakeLikes struct {
	mu       sync.Mutex
	likes    []models.Like
	blogs    *fakeBlogs
	comments *fakeComments
}

func newFakeLikes(blogs *fakeBlogs, comments *fakeComments) *fakeLikes {
	return &fakeLikes{blogs: blogs, comments: comments}
}

func (f *fakeLikes) findIndex(match func(models.Like) bool) int {
	for i, l := range f.likes {
		if match(l) {
			return i
		}
	}
	return -1
}

func (f *fakeLikes) FindBlogLike(_ context.Context, blogID, userID primitive.ObjectID) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findIndex(func(l models.Like) bool { return l.BlogID == blogID && l.LikedBy == userID })
	if i < 0 {
		return nil, store.ErrNotFound
	}
	l := f.likes[i]
	return &l, nil
}

func (f *fakeLikes) CreateBlogLike(_ context.Context, blogID, userID primitive.ObjectID) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l := models.Like{ID: primitive.NewObjectID(), BlogID: blogID, LikedBy: userID, CreatedAt: time.Now().UTC()}
	f.likes = append(f.likes, l)
	return &l, nil
}

func (f *fakeLikes) DeleteBlogLike(_ context.Context, blogID, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findIndex(func(l models.Like) bool { return l.BlogID == blogID && l.LikedBy == userID })
	if i < 0 {
		return store.ErrNotFound
	}
	f.likes = append(f.likes[:i], f.likes[i+1:]...)
	return nil
}

func (f *fakeLikes) FindCommentLike(_ context.Context, commentID, userID primitive.ObjectID) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findIndex(func(l models.Like) bool { return l.CommentID == commentID && l.LikedBy == userID })
	if i < 0 {
		return nil, store.ErrNotFound
	}
	l := f.likes[i]
	return &l, nil
}

func (f *fakeLikes) CreateCommentLike(_ context.Context, commentID, userID primitive.ObjectID) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l := models.Like{ID: primitive.NewObjectID(), CommentID: commentID, LikedBy: userID, CreatedAt: time.Now().UTC()}
	f.likes = append(f.likes, l)
	return &l, nil
}

func (f *fakeLikes) DeleteCommentLike(_ context.Context, commentID, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findIndex(func(l models.Like) bool { return l.CommentID == commentID && l.LikedBy == userID })
	if i < 0 {
		return store.ErrNotFound
	}
	f.likes = append(f.likes[:i], f.likes[i+1:]...)
	return nil
}

func (f *fakeLikes) LikedBlogs(ctx context.Context, userID primitive.ObjectID) ([]models.LikedBlog, error) {
	f.mu.Lock()
	liked := make(map[primitive.ObjectID]int64)
	for _, l := range f.likes {
		if l.LikedBy == userID && !l.BlogID.IsZero() {
			liked[l.BlogID]++
		}
	}
	f.mu.Unlock()

	var out []models.LikedBlog
	for blogID, n := range liked {
		blog, err := f.blogs.FindByID(ctx, blogID)
		if err != nil {
			continue
		}
		out = append(out, models.LikedBlog{BlogID: blogID, NumberOfLikes: n, Blog: *blog})
	}
	return out, nil
}

func (f *fakeLikes) LikedComments(ctx context.Context, userID primitive.ObjectID) ([]models.LikedComment, error) {
	f.mu.Lock()
	liked := make(map[primitive.ObjectID]int64)
	for _, l := range f.likes {
		if l.LikedBy == userID && !l.CommentID.IsZero() {
			liked[l.CommentID]++
		}
	}
	f.mu.Unlock()

	var out []models.LikedComment
	for commentID, n := range liked {
		comment, err := f.comments.FindByID(ctx, commentID)
		if err != nil {
			continue
		}
		out = append(out, models.LikedComment{CommentID: commentID, NumberOfLikes: n, Comment: *comment})
	}
	return out, nil
}

type fakeOtps struct {
	mu   sync.Mutex
	otps map[primitive.ObjectID]models.Otp
}

func newFakeOtps() *fakeOtps {
	return &fakeOtps{otps: make(map[primitive.ObjectID]models.Otp)}
}

func (f *fakeOtps) Upsert(_ context.Context, userID primitive.ObjectID, code string, issuedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.otps[userID] = models.Otp{UserID: userID, Code: code, Verified: false, CreatedAt: issuedAt.UTC()}
	return nil
}

func (f *fakeOtps) Find(_ context.Context, userID primitive.ObjectID) (*models.Otp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	otp, ok := f.otps[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &otp, nil
}

func (f *fakeOtps) MarkVerified(_ context.Context, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	otp, ok := f.otps[userID]
	if !ok {
		return store.ErrNotFound
	}
	otp.Verified = true
	f.otps[userID] = otp
	return nil
}

func (f *fakeOtps) Delete(_ context.Context, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.otps, userID)
	return nil
}

// backdate move o timestamp de emissão para trás (testes de expiração).
func (f *fakeOtps) backdate(userID primitive.ObjectID, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	otp, ok := f.otps[userID]
	if !ok {
		return
	}
	otp.CreatedAt = otp.CreatedAt.Add(-d)
	f.otps[userID] = otp
}

// recorderMail registra os envios em vez de falar SMTP.
type recorderMail struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *recorderMail) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (m *recorderMail) lastTo() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].to
}

func (m *recorderMail) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}
