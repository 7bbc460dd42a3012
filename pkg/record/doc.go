// Package record turns raw personal records into typed users and judges them.
//
// A records document is a JSON array of objects:
//
//	[{
//	    "id": 1,
//	    "email": "valerabig4len@ukr.net",
//	    "full_name": "Valera Zmyshenko",
//	    "gender": "male",
//	    "date_of_birth": "1975-08-15",
//	    "addresses": [{"country": "Ukraine", "city": "Kyiv", "postal_code": "01001"}]
//	}]
//
// Loading and validation are separate steps. Load, LoadFile and Decode only
// fail when the document cannot be turned into entities at all: the file is
// missing, the JSON is broken, a record is not an object, or date_of_birth is
// not a YYYY-MM-DD string. Those failures are returned as *LoadError and the
// first one aborts the whole load. Anything that can be represented, however
// wrong, is returned so it can be reported.
//
// Address and User implement Validatable:
//
//	users, err := record.LoadFile("data.json")
//	if err != nil {
//	    return err
//	}
//	for _, u := range users {
//	    if !u.IsValid() {
//	        fmt.Println(u.Email, u.InvalidFields())
//	    }
//	}
//
// InvalidFields lists failed field names in declaration order. For a User,
// "addresses" appears once when any owned address is invalid.
//
// The date_of_birth rule compares against the current date, so a record can
// turn valid at midnight. Inject a clock with WithClock (parser) or
// User.WithClock to pin it.
package record
