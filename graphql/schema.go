package graphql

// Schema is the account service surface: three mutations sharing the
// uniform result shape, and the token verification query.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		verify(token: String!): VerifyTokenResult!
	}

	type Mutation {
		login(nameOrEmail: String!, password: String!): OperationResult!
		register(name: String!, email: String!, password: String!, password2: String!): OperationResult!
		updatePassword(oldPassword: String!, newPassword: String!): UpdatePasswordResult!
	}

	type FieldError {
		field: String!
		code: String!
	}

	type OperationResult {
		success: Boolean!
		id: String
		errors: [FieldError!]!
	}

	type VerifyTokenResult {
		valid: Boolean!
		userId: String
		userName: String
	}

	type UpdatePasswordResult {
		success: Boolean!
		error: String
	}
`
