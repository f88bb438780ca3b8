// Package i18n renders validation messages in the caller's language.
//
// Translations are nested maps keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FSAdapter for JSON or
// YAML files in any fs.FS, and MultiAdapter to layer catalogs. The built-in
// catalog (DefaultCatalog) covers every constraint of the validator package
// in English and partially in German; keys missing in a language fall back to
// the default language.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//	    i18n.DefaultCatalog(),
//	    i18n.NewFSAdapter(os.DirFS("./locales"), "."),
//	}, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	msg := tr.T("de", "validation.required", "field", "email")
//	// msg == "email muss ausgefüllt werden."
//
// Translator satisfies validator.Translator, so it can be plugged into a
// rule engine with validator.WithTranslator or applied afterwards with
// ValidationErrors.Translate.
//
// Language negotiation uses golang.org/x/text/language: Match accepts a
// BCP 47 tag or an Accept-Language header value and returns the best
// supported language.
package i18n
