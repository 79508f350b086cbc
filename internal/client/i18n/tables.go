package i18n

import "fmt"

var English = Strings{
	Common: CommonStrings{
		Loading: "Loading...",
		Error:   "An error occurred",
		Retry:   "Retry",
		Cancel:  "Cancel",
		Save:    "Save",
		Delete:  "Delete",
		Send:    "Send",
		Copied:  "Copied!",
		Back:    "Back",
	},
	Auth: AuthStrings{
		Login:           "Log in",
		Signup:          "Sign up",
		Logout:          "Logout",
		LoginTitle:      "Welcome back",
		SignupTitle:     "Create account",
		Username:        "Username",
		Name:            "Name",
		SecretPhrase:    "Secret phrase",
		SecretAnswer:    "Secret answer",
		Forgot:          "Forgot your answer?",
		RecoverTitle:    "Recover account",
		RecoverHint:     "Your secret phrase",
		BackToLogin:     "Back to login",
		LoginSuccess:    "Logged in successfully",
		SignupSuccess:   "Account created successfully",
		SessionExpired:  "Session expired. Please login again",
		NotAuthed:       "Please login to continue",
		GuestPermanent:  "Permanent links require an account",
		InvalidLanguage: "Unsupported language",
	},
	Nav: NavStrings{
		Home:     "Home",
		Links:    "Links",
		Search:   "Search",
		Messages: "Messages",
		Profile:  "Profile",
		Settings: "Settings",
	},
	Links: LinkStrings{
		CreateTitle: "Create Anonymous Link",
		LinkName:    "Link name (optional)",
		Duration:    "Duration",
		Generate:    "Generate Link",
		Permanent:   "Permanent",
		Expired:     "Expired",
		ExpiresIn:   "Expires in",
		PublicURL:   "Public link",
		PrivateURL:  "Private link",
		NoLinks:     "No active links yet",
		NoMessages:  "No messages yet",
		Compose:     "Write an anonymous message",
	},
	Messages: MessageStrings{
		Inbox:      "Inbox",
		Public:     "Public",
		Favorite:   "Favorites",
		Empty:      "No messages yet",
		Anonymous:  "Anonymous",
		MakePublic: "Make public",
		MakeInbox:  "Move to inbox",
		AddFav:     "Favorite",
		Delete:     "Delete",
		DeleteAll:  "Delete all",
	},
	Profile: ProfileStrings{
		Follow:        "Follow",
		Unfollow:      "Unfollow",
		Following:     "Following",
		Followers:     "Followers",
		LoginToFollow: "Login to follow",
		GuestTitle:    "Guest Mode",
		GuestSubtitle: "Login or signup to save your data and access more features.",
		SendMessage:   "Send anonymous message",
		SearchPrompt:  "Search users",
		NoResults:     "No users found",
	},
	Time: TimeStrings{
		Days:    "days",
		Hours:   "hours",
		Minutes: "minutes",
		Seconds: "seconds",
		JustNow: "just now",

		MinutesAgo: func(n int) string { return fmt.Sprintf("%dm ago", n) },
		HoursAgo:   func(n int) string { return fmt.Sprintf("%dh ago", n) },
		DaysAgo:    func(n int) string { return fmt.Sprintf("%dd ago", n) },
	},
}

var Arabic = Strings{
	Common: CommonStrings{
		Loading: "جاري التحميل...",
		Error:   "حدث خطأ",
		Retry:   "إعادة المحاولة",
		Cancel:  "إلغاء",
		Save:    "حفظ",
		Delete:  "حذف",
		Send:    "إرسال",
		Copied:  "تم النسخ!",
		Back:    "رجوع",
	},
	Auth: AuthStrings{
		Login:           "تسجيل الدخول",
		Signup:          "إنشاء حساب",
		Logout:          "تسجيل الخروج",
		LoginTitle:      "مرحبا بعودتك",
		SignupTitle:     "إنشاء حساب",
		Username:        "اسم المستخدم",
		Name:            "الاسم",
		SecretPhrase:    "العبارة السرية",
		SecretAnswer:    "الإجابة السرية",
		Forgot:          "نسيت إجابتك؟",
		RecoverTitle:    "استعادة الحساب",
		RecoverHint:     "عبارتك السرية",
		BackToLogin:     "العودة لتسجيل الدخول",
		LoginSuccess:    "تم تسجيل الدخول بنجاح",
		SignupSuccess:   "تم إنشاء الحساب بنجاح",
		SessionExpired:  "انتهت الجلسة. سجل الدخول مرة أخرى",
		NotAuthed:       "سجل الدخول للمتابعة",
		GuestPermanent:  "الروابط الدائمة تتطلب حسابا",
		InvalidLanguage: "لغة غير مدعومة",
	},
	Nav: NavStrings{
		Home:     "الرئيسية",
		Links:    "الروابط",
		Search:   "بحث",
		Messages: "الرسائل",
		Profile:  "الملف الشخصي",
		Settings: "الإعدادات",
	},
	Links: LinkStrings{
		CreateTitle: "إنشاء رابط مجهول",
		LinkName:    "اسم الرابط (اختياري)",
		Duration:    "المدة",
		Generate:    "إنشاء الرابط",
		Permanent:   "دائم",
		Expired:     "منتهي الصلاحية",
		ExpiresIn:   "ينتهي الرابط في",
		PublicURL:   "الرابط العام",
		PrivateURL:  "الرابط الخاص",
		NoLinks:     "لا توجد روابط نشطة",
		NoMessages:  "لا توجد رسائل حتى الآن",
		Compose:     "اكتب رسالة مجهولة",
	},
	Messages: MessageStrings{
		Inbox:      "الوارد",
		Public:     "عام",
		Favorite:   "المفضلة",
		Empty:      "لا توجد رسائل",
		Anonymous:  "مجهول",
		MakePublic: "اجعله عاما",
		MakeInbox:  "انقل إلى الوارد",
		AddFav:     "مفضلة",
		Delete:     "حذف",
		DeleteAll:  "حذف الكل",
	},
	Profile: ProfileStrings{
		Follow:        "متابعة",
		Unfollow:      "إلغاء المتابعة",
		Following:     "يتابع",
		Followers:     "المتابعون",
		LoginToFollow: "سجل الدخول للمتابعة",
		GuestTitle:    "وضع الزائر",
		GuestSubtitle: "سجل الدخول أو أنشئ حسابا لحفظ بياناتك والوصول لمزيد من الميزات.",
		SendMessage:   "أرسل رسالة مجهولة",
		SearchPrompt:  "ابحث عن المستخدمين",
		NoResults:     "لم يتم العثور على مستخدمين",
	},
	Time: TimeStrings{
		Days:    "أيام",
		Hours:   "ساعات",
		Minutes: "دقائق",
		Seconds: "ثوان",
		JustNow: "للتو",

		MinutesAgo: func(n int) string { return fmt.Sprintf("منذ %d د", n) },
		HoursAgo:   func(n int) string { return fmt.Sprintf("منذ %d س", n) },
		DaysAgo:    func(n int) string { return fmt.Sprintf("منذ %d ي", n) },
	},
}

var Spanish = Strings{
	Common: CommonStrings{
		Loading: "Cargando...",
		Error:   "Ocurrió un error",
		Retry:   "Reintentar",
		Cancel:  "Cancelar",
		Save:    "Guardar",
		Delete:  "Eliminar",
		Send:    "Enviar",
		Copied:  "¡Copiado!",
		Back:    "Atrás",
	},
	Auth: AuthStrings{
		Login:           "Iniciar sesión",
		Signup:          "Registrarse",
		Logout:          "Cerrar sesión",
		LoginTitle:      "Bienvenido de nuevo",
		SignupTitle:     "Crear cuenta",
		Username:        "Nombre de usuario",
		Name:            "Nombre",
		SecretPhrase:    "Frase secreta",
		SecretAnswer:    "Respuesta secreta",
		Forgot:          "¿Olvidaste tu respuesta?",
		RecoverTitle:    "Recuperar cuenta",
		RecoverHint:     "Tu frase secreta",
		BackToLogin:     "Volver a iniciar sesión",
		LoginSuccess:    "Sesión iniciada correctamente",
		SignupSuccess:   "Cuenta creada correctamente",
		SessionExpired:  "Sesión expirada. Inicia sesión de nuevo",
		NotAuthed:       "Inicia sesión para continuar",
		GuestPermanent:  "Los enlaces permanentes requieren una cuenta",
		InvalidLanguage: "Idioma no compatible",
	},
	Nav: NavStrings{
		Home:     "Inicio",
		Links:    "Enlaces",
		Search:   "Buscar",
		Messages: "Mensajes",
		Profile:  "Perfil",
		Settings: "Ajustes",
	},
	Links: LinkStrings{
		CreateTitle: "Crear enlace anónimo",
		LinkName:    "Nombre del enlace (opcional)",
		Duration:    "Duración",
		Generate:    "Generar enlace",
		Permanent:   "Permanente",
		Expired:     "Expirado",
		ExpiresIn:   "El enlace expira en",
		PublicURL:   "Enlace público",
		PrivateURL:  "Enlace privado",
		NoLinks:     "Sin enlaces activos",
		NoMessages:  "Sin mensajes aún",
		Compose:     "Escribe un mensaje anónimo",
	},
	Messages: MessageStrings{
		Inbox:      "Bandeja",
		Public:     "Público",
		Favorite:   "Favoritos",
		Empty:      "Aún no hay mensajes",
		Anonymous:  "Anónimo",
		MakePublic: "Hacer público",
		MakeInbox:  "Mover a bandeja",
		AddFav:     "Favorito",
		Delete:     "Eliminar",
		DeleteAll:  "Eliminar todo",
	},
	Profile: ProfileStrings{
		Follow:        "Seguir",
		Unfollow:      "Dejar de seguir",
		Following:     "Siguiendo",
		Followers:     "Seguidores",
		LoginToFollow: "Inicia sesión para seguir",
		GuestTitle:    "Modo invitado",
		GuestSubtitle: "Inicia sesión o regístrate para guardar tus datos y acceder a más funciones.",
		SendMessage:   "Enviar mensaje anónimo",
		SearchPrompt:  "Buscar usuarios",
		NoResults:     "No se encontraron usuarios",
	},
	Time: TimeStrings{
		Days:    "días",
		Hours:   "horas",
		Minutes: "minutos",
		Seconds: "segundos",
		JustNow: "justo ahora",

		MinutesAgo: func(n int) string { return fmt.Sprintf("hace %dm", n) },
		HoursAgo:   func(n int) string { return fmt.Sprintf("hace %dh", n) },
		DaysAgo:    func(n int) string { return fmt.Sprintf("hace %dd", n) },
	},
}
