package lang

// Text keys used by the handlers. "too_big" carries a %.1f verb for the
// measured size in megabytes.
var texts = map[string]map[string]string{
	"en": {
		"start":         "🔥 Welcome to Ultra High video downloader\n\nSend a link from TikTok / YouTube / X / Facebook / Instagram and I will fetch the video for you 📥",
		"help":          "Send me a video link and wait for the upload.\nVideos above 48 MB cannot be sent by bots.\nUse the menu below to change language or see channel info.",
		"invalid_link":  "🚫 Send a valid video link.",
		"join_prompt":   "📢 Join our channel first, then tap the button to confirm.",
		"btn_join":      "Join channel",
		"btn_recheck":   "✅ I joined",
		"subscribed_ok": "✅ Subscription confirmed, send me a link!",
		"downloading":   "⏳ Downloading...",
		"uploading":     "📤 Uploading...",
		"done":          "✅ Downloaded and sent.",
		"too_big":       "⚠️ The video (%.1fMB) is larger than the bot upload limit.",
		"failed":        "⚠️ Something went wrong while downloading, or the site blocked it.",
		"choose_lang":   "🌐 Choose your language:",
		"lang_saved":    "✅ Language saved.",
		"vip_info":      "⭐ VIP has no extra cost right now — everyone gets full quality while we are in beta.",
		"channel_info":  "📢 All updates are posted in our channel: %s",
		"download_tip":  "📥 Just send a video link from TikTok / YouTube / X / Facebook / Instagram.",
		"btn_download":  "📥 Download",
		"btn_language":  "🌐 Language",
		"btn_vip":       "⭐ VIP",
		"btn_channel":   "📢 Channel",
	},
	"ar": {
		"start":         "🔥 أهلاً بك في Ultra High تحميل فيديوهات\n\nأرسل رابط من TikTok / YouTube / X / Facebook / Instagram.\nأنا أحمّل لك الفيديو وأرسله جاهز للحفظ 📥",
		"help":          "أرسل رابط فيديو وانتظر الإرسال.\nلا يمكن إرسال فيديو أكبر من 48MB عبر البوت.\nاستخدم القائمة بالأسفل لتغيير اللغة أو معلومات القناة.",
		"invalid_link":  "🚫 أرسل رابط فيديو صحيح.",
		"join_prompt":   "📢 اشترك في قناتنا أولاً ثم اضغط الزر للتأكيد.",
		"btn_join":      "اشترك في القناة",
		"btn_recheck":   "✅ اشتركت",
		"subscribed_ok": "✅ تم تأكيد الاشتراك، أرسل الرابط!",
		"downloading":   "⏳ جاري التحميل...",
		"uploading":     "📤 جاري الإرسال...",
		"done":          "✅ تم التحميل والإرسال.",
		"too_big":       "⚠️ الفيديو حجمه (%.1fMB) أكبر من حد الإرسال عبر البوت.",
		"failed":        "⚠️ صار خطأ أثناء التحميل أو الموقع مانع التحميل.",
		"choose_lang":   "🌐 اختر لغتك:",
		"lang_saved":    "✅ تم حفظ اللغة.",
		"vip_info":      "⭐ خدمة VIP مجانية حالياً — الجودة الكاملة للجميع خلال الفترة التجريبية.",
		"channel_info":  "📢 كل التحديثات تُنشر في قناتنا: %s",
		"download_tip":  "📥 فقط أرسل رابط فيديو من TikTok / YouTube / X / Facebook / Instagram.",
		"btn_download":  "📥 تحميل",
		"btn_language":  "🌐 اللغة",
		"btn_vip":       "⭐ VIP",
		"btn_channel":   "📢 القناة",
	},
	"ru": {
		"start":         "🔥 Добро пожаловать в Ultra High загрузчик видео\n\nПришлите ссылку с TikTok / YouTube / X / Facebook / Instagram, и я скачаю видео для вас 📥",
		"help":          "Пришлите ссылку на видео и дождитесь отправки.\nВидео больше 48 МБ бот отправить не может.\nМеню внизу — язык и информация о канале.",
		"invalid_link":  "🚫 Пришлите корректную ссылку на видео.",
		"join_prompt":   "📢 Сначала подпишитесь на наш канал, затем нажмите кнопку для проверки.",
		"btn_join":      "Подписаться",
		"btn_recheck":   "✅ Я подписался",
		"subscribed_ok": "✅ Подписка подтверждена, присылайте ссылку!",
		"downloading":   "⏳ Скачиваю...",
		"uploading":     "📤 Отправляю...",
		"done":          "✅ Скачано и отправлено.",
		"too_big":       "⚠️ Видео (%.1fMB) больше лимита отправки через бота.",
		"failed":        "⚠️ Ошибка при скачивании, или сайт блокирует загрузку.",
		"choose_lang":   "🌐 Выберите язык:",
		"lang_saved":    "✅ Язык сохранён.",
		"vip_info":      "⭐ VIP сейчас бесплатен — полное качество для всех на время беты.",
		"channel_info":  "📢 Все обновления — в нашем канале: %s",
		"download_tip":  "📥 Просто пришлите ссылку на видео из TikTok / YouTube / X / Facebook / Instagram.",
		"btn_download":  "📥 Скачать",
		"btn_language":  "🌐 Язык",
		"btn_vip":       "⭐ VIP",
		"btn_channel":   "📢 Канал",
	},
}
