package graphql

// Schema is the public API. User has no password field, so the stored hash
// never leaves the service layer.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type User {
		id: ID!
		email: String!
		createdAt: Time!
		updatedAt: Time!
	}

	type UserWithToken {
		user: User!
		token: String!
	}

	input UserInputData {
		email: String!
		password: String!
	}

	type Query {
		# Resolves a token issued by login to its user.
		privateInfo(token: String!): User
	}

	type Mutation {
		signUp(data: UserInputData!): User!
		login(data: UserInputData!): UserWithToken!
	}
`
