package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Token     TokenRepo
	ResetCode ResetCodeRepo
	Template  TemplateRepo
	Form      FormRepo
	Response  ResponseRepo
	LogEntry  LogEntryRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Token:     NewTokenRepo(db),
		ResetCode: NewResetCodeRepo(db),
		Template:  NewTemplateRepo(db),
		Form:      NewFormRepo(db),
		Response:  NewResponseRepo(db),
		LogEntry:  NewLogEntryRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Token:     r.Token.WithTx(tx),
		ResetCode: r.ResetCode.WithTx(tx),
		Template:  r.Template.WithTx(tx),
		Form:      r.Form.WithTx(tx),
		Response:  r.Response.WithTx(tx),
		LogEntry:  r.LogEntry.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn against transaction-scoped repositories. Without an
// underlying connection the callback runs against the container as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
