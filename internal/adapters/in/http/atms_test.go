package http_test

import (
	"net/http"
	"testing"

	httpapi "cashrun/internal/adapters/in/http"
	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/model/atm"
	"cashrun/internal/core/domain/model/kernel"
	"cashrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetActiveAtms(t *testing.T) {
	f := newFixture(t)
	location, err := kernel.NewGeoPoint(59.33, 18.06)
	require.NoError(t, err)
	id := kernel.NewUUID()
	f.activeAtms.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetActiveAtmsQueryResponse{
		{ID: id, Name: "Central", Address: "Main 1", Location: location},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/atms", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]httpapi.Atm](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, httpapi.Atm{ID: id.String(), Name: "Central", Address: "Main 1", Lat: 59.33, Lng: 18.06}, got[0])
}

func TestRegisterAtm(t *testing.T) {
	t.Run("should register an active atm", func(t *testing.T) {
		f := newFixture(t)
		f.registrar.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterAtmCommand) bool {
			return cmd.Name() == "Harbour" && cmd.Location().Lat() == 10 && cmd.Location().Lng() == 20
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/atms", `{"name":"Harbour","address":"Pier 4","lat":10,"lng":20}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decode[httpapi.Atm](t, rec)
		assert.Equal(t, "Harbour", got.Name)
		_, err := kernel.UUIDFromString(got.ID)
		assert.NoError(t, err)
	})

	t.Run("should reject invalid coordinates and blank names", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/atms", `{"name":"Harbour","address":"Pier 4","lat":10,"lng":200}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = f.do(http.MethodPost, "/api/v1/atms", `{"name":" ","address":"Pier 4","lat":10,"lng":20}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetAtmStatus(t *testing.T) {
	id := kernel.NewUUID()
	target := "/api/v1/atms/" + id.String() + "/status"

	t.Run("should deactivate", func(t *testing.T) {
		f := newFixture(t)
		f.statuses.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetAtmStatusCommand) bool {
			return cmd.AtmID().IsEqual(id) && cmd.Status() == atm.StatusInactive
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, target, `{"status":"inactive"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should map unknown atm to 404", func(t *testing.T) {
		f := newFixture(t)
		f.statuses.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("atm", id.String())).Once()

		rec := f.do(http.MethodPut, target, `{"status":"active"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPut, target, `{"status":"broken"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignAtm(t *testing.T) {
	addressID := kernel.NewUUID()

	t.Run("should return the assignment", func(t *testing.T) {
		f := newFixture(t)
		atmID := kernel.NewUUID()
		f.assigner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignAtmCommand) bool {
			return cmd.AddressID().IsEqual(addressID) && cmd.Lat() == 1.5 && cmd.Lng() == 2.5
		})).Return(commands.AssignAtmResult{
			AtmID:          atmID,
			AtmName:        "Corner",
			DistanceMeters: 0,
			Source:         commands.SourcePreference,
		}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/atm-assignments",
			`{"customerAddressId":"`+addressID.String()+`","lat":1.5,"lng":2.5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[httpapi.Assignment](t, rec)
		assert.Equal(t, atmID.String(), got.AtmID)
		assert.Equal(t, "preference", got.Source)
	})

	t.Run("should validate coordinates at the edge", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/atm-assignments",
			`{"customerAddressId":"`+addressID.String()+`","lat":-91,"lng":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should map network failures to 503", func(t *testing.T) {
		f := newFixture(t)
		f.assigner.On("Handle", mock.Anything, mock.Anything).
			Return(commands.AssignAtmResult{}, errs.NewNetworkError("list active atms", assert.AnError)).Once()

		rec := f.do(http.MethodPost, "/api/v1/atm-assignments",
			`{"customerAddressId":"`+addressID.String()+`","lat":0,"lng":0}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
