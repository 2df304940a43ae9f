// Package graphql exposes the account service as a GraphQL API served over
// HTTP, together with the metrics and health endpoints.
package graphql

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/logging"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/dmitrijs2005/gophaccount/internal/server/services"
	"github.com/graph-gophers/graphql-go"
)

// AccountService is the subset of services.AccountService the resolvers use.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	LookupByToken(ctx context.Context, token string) (*models.User, error)
}

// Observer records the outcome and latency of a resolved operation.
type Observer interface {
	Observe(operation string, started time.Time, err error)
}

type nopObserver struct{}

func (nopObserver) Observe(string, time.Time, error) {}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	accounts AccountService
	metrics  Observer
	logger   logging.Logger
}

// NewResolver returns a root resolver. A nil observer disables metrics.
func NewResolver(s AccountService, o Observer, l logging.Logger) *Resolver {
	if o == nil {
		o = nopObserver{}
	}
	return &Resolver{
		accounts: s,
		metrics:  o,
		logger:   l.With(common.ModuleKey, "graphql"),
	}
}

func (r *Resolver) PrivateInfo(ctx context.Context, args struct{ Token string }) (u *userResolver, err error) {
	defer r.observe("privateInfo", time.Now(), &err)

	user, err := r.accounts.LookupByToken(ctx, args.Token)
	if err != nil {
		return nil, r.toResolverError(ctx, "privateInfo", err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) SignUp(ctx context.Context, args struct{ Data UserInputData }) (u *userResolver, err error) {
	defer r.observe("signUp", time.Now(), &err)

	r.logger.Info(ctx, "Registration request")

	if err := validateUserInput(args.Data); err != nil {
		return nil, r.toResolverError(ctx, "signUp", err)
	}

	user, err := r.accounts.Register(ctx, args.Data.Email, args.Data.Password)
	if err != nil {
		return nil, r.toResolverError(ctx, "signUp", err)
	}

	r.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &userResolver{u: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Data UserInputData }) (t *userWithTokenResolver, err error) {
	defer r.observe("login", time.Now(), &err)

	if err := validateUserInput(args.Data); err != nil {
		return nil, r.toResolverError(ctx, "login", err)
	}

	res, err := r.accounts.Login(ctx, args.Data.Email, args.Data.Password)
	if err != nil {
		return nil, r.toResolverError(ctx, "login", err)
	}

	r.logger.Info(ctx, "Logged in", "user_id", res.User.ID)
	return &userWithTokenResolver{user: res.User, token: res.Token}, nil
}

func (r *Resolver) observe(operation string, started time.Time, err *error) {
	var e error
	if err != nil && *err != nil {
		e = *err
		if re, ok := e.(*resolverError); ok {
			e = re.asCommon()
		}
	}
	r.metrics.Observe(operation, started, e)
}

type userResolver struct {
	u *models.User
}

func (r *userResolver) ID() graphql.ID          { return graphql.ID(r.u.ID) }
func (r *userResolver) Email() string           { return r.u.Email }
func (r *userResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.u.CreatedAt} }
func (r *userResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.u.UpdatedAt} }

type userWithTokenResolver struct {
	user  *models.User
	token string
}

func (r *userWithTokenResolver) User() *userResolver { return &userResolver{u: r.user} }
func (r *userWithTokenResolver) Token() string       { return r.token }
