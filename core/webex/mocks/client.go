package mocks

import (
	"context"

	"aa-greeting/core/webex"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of webex.Client
type Client struct {
	mock.Mock
}

func (m *Client) Me(ctx context.Context) (*webex.Person, error) {
	args := m.Called(ctx)
	if person, ok := args.Get(0).(*webex.Person); ok {
		return person, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListLocations(ctx context.Context) ([]webex.Location, error) {
	args := m.Called(ctx)
	if locations, ok := args.Get(0).([]webex.Location); ok {
		return locations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListAutoAttendants(ctx context.Context, locationID string) ([]webex.AutoAttendant, error) {
	args := m.Called(ctx, locationID)
	if aas, ok := args.Get(0).([]webex.AutoAttendant); ok {
		return aas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string) (*webex.AutoAttendantDetails, error) {
	args := m.Called(ctx, locationID, autoAttendantID, orgID)
	if details, ok := args.Get(0).(*webex.AutoAttendantDetails); ok {
		return details, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateAutoAttendant(ctx context.Context, locationID, autoAttendantID, orgID string, settings *webex.AutoAttendantDetails) error {
	args := m.Called(ctx, locationID, autoAttendantID, orgID, settings)
	return args.Error(0)
}

func (m *Client) UploadGreeting(ctx context.Context, req webex.UploadRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
