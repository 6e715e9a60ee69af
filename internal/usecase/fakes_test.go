package usecase

import (
	"context"

	"movie-review-api/internal/catalog"
	"movie-review-api/internal/data/entity"
)

// Hand-written fakes for the repository and catalog interfaces; each test sets
// only the funcs its code path reaches.

type fakeUserRepo struct {
	create            func(ctx context.Context, user *entity.User) error
	findByID          func(ctx context.Context, id int64) (*entity.User, error)
	findAll           func(ctx context.Context) ([]*entity.User, error)
	findByCredentials func(ctx context.Context, email, password string) (*entity.User, error)
	update            func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.create(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return f.findAll(ctx)
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	return f.findByCredentials(ctx, email, password)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return f.update(ctx, user)
}

type fakeMovieRepo struct {
	create  func(ctx context.Context, movie *entity.Movie) error
	findAll func(ctx context.Context) ([]*entity.Movie, error)
	delete  func(ctx context.Context, id int64) (*entity.Movie, error)
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return f.create(ctx, movie)
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return f.findAll(ctx)
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	return f.delete(ctx, id)
}

type fakeReviewRepo struct {
	create        func(ctx context.Context, review *entity.Review) error
	findByID      func(ctx context.Context, id int64) (*entity.Review, error)
	findByMovieID func(ctx context.Context, movieID int64) ([]*entity.Review, error)
	findByUserID  func(ctx context.Context, userID int64) ([]*entity.Review, error)
	update        func(ctx context.Context, review *entity.Review) error
	delete        func(ctx context.Context, id int64) error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return f.create(ctx, review)
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	return f.findByID(ctx, id)
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	return f.findByMovieID(ctx, movieID)
}

func (f *fakeReviewRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	return f.findByUserID(ctx, userID)
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return f.update(ctx, review)
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

type fakeCatalog struct {
	fetchMovie func(ctx context.Context, id int64) (*catalog.Movie, error)
}

func (f *fakeCatalog) FetchMovie(ctx context.Context, id int64) (*catalog.Movie, error) {
	return f.fetchMovie(ctx, id)
}
