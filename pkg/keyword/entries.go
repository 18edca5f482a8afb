package keyword

import (
	"github.com/Yeint-herp/yecc/pkg/cctx"
	"github.com/Yeint-herp/yecc/pkg/token"
)

// entries is the static classification table. Order does not matter for
// correctness (Classify indexes by spelling), but related spellings are
// grouped for readability.
var entries = []Entry{
	// Preprocessor directive keywords.
	{"include", token.PP_INCLUDE, true, cctx.C89, false, FormNeutral, StatusNone},
	{"include_next", token.PP_INCLUDE_NEXT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"define", token.PP_DEFINE, true, cctx.C89, false, FormNeutral, StatusNone},
	{"undef", token.PP_UNDEF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"if", token.PP_IF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"ifdef", token.PP_IFDEF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"ifndef", token.PP_IFNDEF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"elif", token.PP_ELIF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"else", token.PP_ELSE, true, cctx.C89, false, FormNeutral, StatusNone},
	{"endif", token.PP_ENDIF, true, cctx.C89, false, FormNeutral, StatusNone},
	{"error", token.PP_ERROR, true, cctx.C89, false, FormNeutral, StatusNone},
	{"line", token.PP_LINE, true, cctx.C89, false, FormNeutral, StatusNone},
	{"pragma", token.PP_PRAGMA, true, cctx.C89, false, FormNeutral, StatusNone},
	{"import", token.PP_IMPORT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"elifdef", token.PP_ELIFDEF, true, cctx.C23, false, FormNeutral, StatusNone},
	{"elifndef", token.PP_ELIFNDEF, true, cctx.C23, false, FormNeutral, StatusNone},
	{"embed", token.PP_EMBED, true, cctx.C23, false, FormNeutral, StatusNone},
	{"warning", token.PP_WARNING, true, cctx.C23, false, FormNeutral, StatusNone},
	{"__has_include", token.PP___HAS_INCLUDE, true, cctx.C89, true, FormNeutral, StatusNone},
	{"__has_c_attribute", token.PP___HAS_C_ATTRIBUTE, true, cctx.C23, false, FormNeutral, StatusNone},
	{"__VA_OPT__", token.PP___VA_OPT__, true, cctx.C23, false, FormNeutral, StatusNone},
	{"ident", token.PP_IDENT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"sccs", token.PP_SCCS, true, cctx.C89, true, FormNeutral, StatusNone},
	{"assert", token.PP_ASSERT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"unassert", token.PP_UNASSERT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"_assert", token.PP__ASSERT, true, cctx.C89, true, FormNeutral, StatusNone},
	{"defined", token.PP_DEFINED, true, cctx.C89, false, FormNeutral, StatusNone},

	// C89 baseline keywords.
	{"auto", token.KW_AUTO, false, cctx.C89, false, FormNeutral, StatusNone},
	{"break", token.KW_BREAK, false, cctx.C89, false, FormNeutral, StatusNone},
	{"case", token.KW_CASE, false, cctx.C89, false, FormNeutral, StatusNone},
	{"char", token.KW_CHAR, false, cctx.C89, false, FormNeutral, StatusNone},
	{"const", token.KW_CONST, false, cctx.C89, false, FormNeutral, StatusNone},
	{"continue", token.KW_CONTINUE, false, cctx.C89, false, FormNeutral, StatusNone},
	{"default", token.KW_DEFAULT, false, cctx.C89, false, FormNeutral, StatusNone},
	{"do", token.KW_DO, false, cctx.C89, false, FormNeutral, StatusNone},
	{"double", token.KW_DOUBLE, false, cctx.C89, false, FormNeutral, StatusNone},
	{"else", token.KW_ELSE, false, cctx.C89, false, FormNeutral, StatusNone},
	{"enum", token.KW_ENUM, false, cctx.C89, false, FormNeutral, StatusNone},
	{"extern", token.KW_EXTERN, false, cctx.C89, false, FormNeutral, StatusNone},
	{"float", token.KW_FLOAT, false, cctx.C89, false, FormNeutral, StatusNone},
	{"for", token.KW_FOR, false, cctx.C89, false, FormNeutral, StatusNone},
	{"goto", token.KW_GOTO, false, cctx.C89, false, FormNeutral, StatusNone},
	{"if", token.KW_IF, false, cctx.C89, false, FormNeutral, StatusNone},
	{"int", token.KW_INT, false, cctx.C89, false, FormNeutral, StatusNone},
	{"long", token.KW_LONG, false, cctx.C89, false, FormNeutral, StatusNone},
	{"register", token.KW_REGISTER, false, cctx.C89, false, FormNeutral, StatusNone},
	{"return", token.KW_RETURN, false, cctx.C89, false, FormNeutral, StatusNone},
	{"short", token.KW_SHORT, false, cctx.C89, false, FormNeutral, StatusNone},
	{"signed", token.KW_SIGNED, false, cctx.C89, false, FormNeutral, StatusNone},
	{"sizeof", token.KW_SIZEOF, false, cctx.C89, false, FormNeutral, StatusNone},
	{"static", token.KW_STATIC, false, cctx.C89, false, FormNeutral, StatusNone},
	{"struct", token.KW_STRUCT, false, cctx.C89, false, FormNeutral, StatusNone},
	{"switch", token.KW_SWITCH, false, cctx.C89, false, FormNeutral, StatusNone},
	{"typedef", token.KW_TYPEDEF, false, cctx.C89, false, FormNeutral, StatusNone},
	{"union", token.KW_UNION, false, cctx.C89, false, FormNeutral, StatusNone},
	{"unsigned", token.KW_UNSIGNED, false, cctx.C89, false, FormNeutral, StatusNone},
	{"void", token.KW_VOID, false, cctx.C89, false, FormNeutral, StatusNone},
	{"volatile", token.KW_VOLATILE, false, cctx.C89, false, FormNeutral, StatusNone},
	{"while", token.KW_WHILE, false, cctx.C89, false, FormNeutral, StatusNone},

	// C99.
	{"inline", token.KW_INLINE, false, cctx.C99, false, FormNeutral, StatusNone},
	{"restrict", token.KW_RESTRICT, false, cctx.C99, false, FormNeutral, StatusNone},
	{"_Bool", token.KW_UNDERSCORE_BOOL, false, cctx.C99, false, FormOldUnderscored, StatusNone},
	{"_Complex", token.KW_UNDERSCORE_COMPLEX, false, cctx.C99, false, FormNeutral, StatusNone},
	{"_Imaginary", token.KW_UNDERSCORE_IMAGINARY, false, cctx.C99, false, FormNeutral, StatusRemoved},

	// C11, old underscored forms.
	{"_Alignas", token.KW_UNDERSCORE_ALIGNAS, false, cctx.C11, false, FormOldUnderscored, StatusNone},
	{"_Alignof", token.KW_UNDERSCORE_ALIGNOF, false, cctx.C11, false, FormOldUnderscored, StatusNone},
	{"_Atomic", token.KW_UNDERSCORE_ATOMIC, false, cctx.C11, false, FormNeutral, StatusNone},
	{"_Generic", token.KW_UNDERSCORE_GENERIC, false, cctx.C11, false, FormNeutral, StatusNone},
	{"_Noreturn", token.KW_UNDERSCORE_NORETURN, false, cctx.C11, false, FormOldUnderscored, StatusDeprecated},
	{"_Static_assert", token.KW_UNDERSCORE_STATIC_ASSERT, false, cctx.C11, false, FormOldUnderscored, StatusNone},
	{"_Thread_local", token.KW_UNDERSCORE_THREAD_LOCAL, false, cctx.C11, false, FormOldUnderscored, StatusNone},

	// C23, new bare-word forms and additions.
	{"alignas", token.KW_ALIGNAS, false, cctx.C23, false, FormNew, StatusNone},
	{"alignof", token.KW_ALIGNOF, false, cctx.C23, false, FormNew, StatusNone},
	{"bool", token.KW_BOOL, false, cctx.C23, false, FormNew, StatusNone},
	{"static_assert", token.KW_STATIC_ASSERT, false, cctx.C23, false, FormNew, StatusNone},
	{"thread_local", token.KW_THREAD_LOCAL, false, cctx.C23, false, FormNew, StatusNone},
	{"true", token.KW_TRUE, false, cctx.C23, false, FormNeutral, StatusNone},
	{"false", token.KW_FALSE, false, cctx.C23, false, FormNeutral, StatusNone},
	{"nullptr", token.KW_NULLPTR, false, cctx.C23, false, FormNeutral, StatusNone},
	{"typeof", token.KW_TYPEOF, false, cctx.C23, false, FormNeutral, StatusNone},
	{"typeof_unqual", token.KW_TYPEOF_UNQUAL, false, cctx.C23, false, FormNeutral, StatusNone},
	{"constexpr", token.KW_CONSTEXPR, false, cctx.C23, false, FormNeutral, StatusNone},
	{"_BitInt", token.KW_UNDERSCORE_BITINT, false, cctx.C23, false, FormNeutral, StatusNone},

	// GNU extension keywords, available regardless of language standard
	// when GNUExtensions is set.
	{"__asm__", token.KW_GNU_ASM, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__attribute__", token.KW_GNU_ATTRIBUTE, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__extension__", token.KW_GNU_EXTENSION, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__typeof__", token.KW_GNU_TYPEOF, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__real__", token.KW_GNU_REAL, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__imag__", token.KW_GNU_IMAG, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__label__", token.KW_GNU_LABEL, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__thread", token.KW_GNU_THREAD, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__auto_type", token.KW_GNU_AUTO_TYPE, false, cctx.C89, true, FormNeutral, StatusNone},
	{"__alignof__", token.KW_GNU_ALIGNOF, false, cctx.C89, true, FormNeutral, StatusNone},
}
