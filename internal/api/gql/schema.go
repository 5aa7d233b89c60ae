// Package gql serves the users API over GraphQL.
package gql

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// NewSchema builds the users schema with the resolvers of r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"profession": &graphql.Field{Type: graphql.String},
			"company":    &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"updated_at": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"profession": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"company":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"profession": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"company":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	userList := graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType)))
	idArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    userList,
				Resolve: r.Users,
			},
			"user": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.User,
			},
			"usersByCompany": &graphql.Field{
				Type: userList,
				Args: graphql.FieldConfigArgument{
					"company": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.UsersByCompany,
			},
			"usersByProfession": &graphql.Field{
				Type: userList,
				Args: graphql.FieldConfigArgument{
					"profession": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.UsersByProfession,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: r.CreateUser,
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":    idArg,
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: r.UpdateUser,
			},
			"deleteUser": &graphql.Field{
				Type:    graphql.NewNonNull(userType),
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.DeleteUser,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	return schema, nil
}
