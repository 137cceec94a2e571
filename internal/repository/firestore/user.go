package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staynest-admin-backend/internal/domain"
)

type userRepository struct {
	client *firestore.Client
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	u := userFromDoc(doc)
	return &u, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	iter := r.client.Collection(usersCollection).Where("role", "==", string(role)).Documents(ctx)
	defer iter.Stop()

	var users []domain.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan users: %w", err)
		}
		users = append(users, userFromDoc(doc))
	}
	return users, nil
}

func userFromDoc(doc *firestore.DocumentSnapshot) domain.User {
	data := doc.Data()
	return domain.User{
		ID:          doc.Ref.ID,
		Name:        asString(data["name"]),
		Email:       asString(data["email"]),
		Role:        domain.UserRole(asString(data["role"])),
		PayPalEmail: asString(data["paypalEmail"]),
		CreatedAt:   data["createdAt"],
	}
}
