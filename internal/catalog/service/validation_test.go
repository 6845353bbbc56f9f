package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidateCreate_Quantity(t *testing.T) {
	testCases := []struct {
		name     string
		quantity *int32
		wantErr  bool
	}{
		{name: "Error - absent quantity", quantity: nil, wantErr: true},
		{name: "Error - negative quantity", quantity: int32Ptr(-5), wantErr: true},
		{name: "Error - zero quantity", quantity: int32Ptr(0), wantErr: true},
		{name: "Success - lower bound", quantity: int32Ptr(1), wantErr: false},
		{name: "Success - upper bound", quantity: int32Ptr(100000), wantErr: false},
		{name: "Error - one above upper bound", quantity: int32Ptr(100001), wantErr: true},
		{name: "Error - far above upper bound", quantity: int32Ptr(150000), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			request := ProductRequest{
				Name:     strPtr("Widget"),
				Price:    floatPtr(9.99),
				Quantity: tc.quantity,
			}
			// when
			vErr := validateCreate(request)
			// then
			if tc.wantErr {
				require.NotNil(t, vErr)
				assert.Equal(t, "quantity", vErr.Field)
				assert.Equal(t, "Invalid quantity for product: Widget", vErr.Message)
				return
			}
			assert.Nil(t, vErr)
		})
	}
}

func Test_ValidateCreate_Name(t *testing.T) {
	testCases := []struct {
		name        string
		productName *string
		wantErr     bool
	}{
		{name: "Error - absent name", productName: nil, wantErr: true},
		{name: "Error - empty name", productName: strPtr(""), wantErr: true},
		{name: "Error - whitespace-only name", productName: strPtr("   "), wantErr: true},
		{name: "Success - single character", productName: strPtr("x"), wantErr: false},
		{name: "Success - 100 characters", productName: strPtr(strings.Repeat("a", 100)), wantErr: false},
		{name: "Error - 101 characters", productName: strPtr(strings.Repeat("a", 101)), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			request := ProductRequest{
				Name:     tc.productName,
				Price:    floatPtr(9.99),
				Quantity: int32Ptr(10),
			}
			// when
			vErr := validateCreate(request)
			// then
			if tc.wantErr {
				require.NotNil(t, vErr)
				assert.Equal(t, "name", vErr.Field)
				assert.Equal(t, "Invalid name for one of the products", vErr.Message)
				return
			}
			assert.Nil(t, vErr)
		})
	}
}

func Test_ValidateCreate_Price(t *testing.T) {
	testCases := []struct {
		name    string
		price   *float64
		wantErr bool
	}{
		{name: "Error - absent price", price: nil, wantErr: true},
		{name: "Error - zero price", price: floatPtr(0), wantErr: true},
		{name: "Error - negative price", price: floatPtr(-1.5), wantErr: true},
		{name: "Success - small positive price", price: floatPtr(0.01), wantErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			request := ProductRequest{
				Name:     strPtr("Widget"),
				Price:    tc.price,
				Quantity: int32Ptr(10),
			}
			// when
			vErr := validateCreate(request)
			// then
			if tc.wantErr {
				require.NotNil(t, vErr)
				assert.Equal(t, "price", vErr.Field)
				assert.Equal(t, "Invalid price for product: Widget", vErr.Message)
				return
			}
			assert.Nil(t, vErr)
		})
	}
}

// The quantity check runs first on create, so a request with several invalid
// fields reports the quantity.
func Test_ValidateCreate_CheckOrder(t *testing.T) {
	vErr := validateCreate(ProductRequest{Name: nil, Price: floatPtr(-1), Quantity: int32Ptr(0)})
	require.NotNil(t, vErr)
	assert.Equal(t, "quantity", vErr.Field)
	assert.Equal(t, "Invalid quantity for product: one of the products", vErr.Message)
}

func Test_ValidateUpdate(t *testing.T) {
	valid := ProductRequest{Name: strPtr("Widget"), Price: floatPtr(9.99), Quantity: int32Ptr(10)}

	testCases := []struct {
		name        string
		mutate      func(r ProductRequest) ProductRequest
		wantField   string
		wantMessage string
	}{
		{
			name:   "Success - valid request",
			mutate: func(r ProductRequest) ProductRequest { return r },
		},
		{
			name:        "Error - absent name",
			mutate:      func(r ProductRequest) ProductRequest { r.Name = nil; return r },
			wantField:   "name",
			wantMessage: "Please enter a valid product name",
		},
		{
			name:        "Error - empty name",
			mutate:      func(r ProductRequest) ProductRequest { r.Name = strPtr(" "); return r },
			wantField:   "name",
			wantMessage: "Please enter a valid product name",
		},
		{
			name:        "Error - non-positive price",
			mutate:      func(r ProductRequest) ProductRequest { r.Price = floatPtr(0); return r },
			wantField:   "price",
			wantMessage: "Please enter a valid product price greater than 0",
		},
		{
			name:        "Error - non-positive quantity",
			mutate:      func(r ProductRequest) ProductRequest { r.Quantity = int32Ptr(0); return r },
			wantField:   "quantity",
			wantMessage: "Please enter a valid product quantity greater than 0",
		},
		{
			name:        "Error - quantity above upper bound",
			mutate:      func(r ProductRequest) ProductRequest { r.Quantity = int32Ptr(100001); return r },
			wantField:   "quantity",
			wantMessage: "Please enter a valid product quantity less than 100001",
		},
		{
			name:        "Error - name checked before price and quantity",
			mutate:      func(r ProductRequest) ProductRequest { r.Name = nil; r.Price = floatPtr(-1); r.Quantity = nil; return r },
			wantField:   "name",
			wantMessage: "Please enter a valid product name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			vErr := validateUpdate(tc.mutate(valid))
			// then
			if tc.wantField == "" {
				assert.Nil(t, vErr)
				return
			}
			require.NotNil(t, vErr)
			assert.Equal(t, tc.wantField, vErr.Field)
			assert.Equal(t, tc.wantMessage, vErr.Message)
		})
	}
}
