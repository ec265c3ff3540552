// Package validators provides custom go-playground/validator tags shared by request DTOs.
package validators
