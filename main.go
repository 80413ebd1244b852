// sheetkeys generates a string constants type from the key column of a
// Google Sheets document.
//
// The first column of the sheet, below the header row, holds the keys. Each
// key becomes one property of the generated type, annotated with the key as
// its JSON name and defaulting to the key itself, so a JSON translation file
// can be decoded straight into the type.
//
// For example, given a sheet like
//
//	key          | vi        | en
//	profile_name | Tên       | Name
//	Login Button | Đăng nhập | Log in
//	class        | Lớp       | Class
//
// sheetkeys writes (with the default Kotlin target)
//
//	@JsonClass(generateAdapter = true)
//	data class StringApp(
//	    @Json(name = "profile_name") val profileName: String = "profile_name",
//	    @Json(name = "Login Button") val loginButton: String = "Login Button",
//	    @Json(name = "class") val classValue: String = "class"
//	)
//
// Keys are turned into camel-case names; names that would start with a
// digit, collide with a keyword or with each other are adjusted so every
// property is valid and unique. With --target go, a Go struct with json tags
// is generated instead, which also makes sheetkeys usable from go:generate.
//
//	//go:generate sheetkeys --input keys.csv --target go -p example -o . --copy-to-cwd=false -q
//
// For help with the cli, run with the --help argument.
//
//	sheetkeys --help
package main

import (
	"github.com/ajjensen13/sheetkeys/internal/cmd"
)

func main() {
	cmd.Execute()
}
