package repository

import (
	"errors"
	"testing"

	"github.com/alimikegami/e-commerce/pkg/errs"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslateWriteError(t *testing.T) {
	type TestCase struct {
		Name      string
		Err       error
		Duplicate bool
	}

	timeout := errors.New("server selection timeout")
	testCases := []TestCase{
		{
			Name: "unique index violation",
			Err: mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: 11000, Message: "E11000 duplicate key error collection: test.recommendations index: prod-rec-id"},
			}},
			Duplicate: true,
		},
		{
			Name:      "duplicate reported as command error",
			Err:       mongo.CommandError{Code: 11000, Message: "E11000 duplicate key error"},
			Duplicate: true,
		},
		{
			Name: "other write error",
			Err:  mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}}},
		},
		{
			Name: "transport error",
			Err:  timeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := translateWriteError(tc.Err)

			if tc.Duplicate {
				assert.ErrorIs(t, err, errs.ErrDuplicateKey)
			} else {
				assert.NotErrorIs(t, err, errs.ErrDuplicateKey)
				assert.Equal(t, tc.Err, err)
			}
		})
	}
}
