package i18n

var mn = map[string]string{
	"home":                       "Нүүр",
	"products":                   "Бүтээгдэхүүн",
	"categories":                 "Ангилал",
	"sale":                       "Хямдрал",
	"winterSale":                 "Өвлийн хямдрал",
	"brands":                     "Брэнд",
	"orders":                     "Захиалга",
	"wishlist":                   "Хүслийн жагсаалт",
	"cart":                       "Сагс",
	"settings":                   "Тохиргоо",
	"login":                      "Нэвтрэх",
	"logout":                     "Гарах",
	"signup":                     "Бүртгүүлэх",
	"register":                   "Бүртгүүлэх",
	"admin":                      "Админ",
	"welcomeToProGear":           "ProGear-т тавтай морил",
	"premiumGamingEquipment":     "Дэлхийн мэргэжлийн киберспортын тоглогчдын итгэдэг дээд зэргийн тоглоомын төхөөрөмж",
	"shopNow":                    "Худалдан авах",
	"viewSale":                   "Хямдрал үзэх",
	"featuredProducts":           "Онцлох бүтээгдэхүүн",
	"handpickedGear":             "Жинхэнэ тоглогчдод зориулсан сонгосон төхөөрөмж",
	"viewAllProducts":            "Бүх бүтээгдэхүүн үзэх",
	"discoverPremiumGaming":      "Дээд зэргийн тоглоомын төхөөрөмж олох",
	"productsFound":              "бүтээгдэхүүн олдлоо",
	"filters":                    "Шүүлтүүр",
	"category":                   "Ангилал",
	"brand":                      "Брэнд",
	"tags":                       "Шошго",
	"all":                        "Бүгд",
	"sortDefault":                "Эрэмбэлэх: Үндсэн",
	"sortPriceLow":               "Үнэ: Бага-их",
	"sortPriceHigh":              "Үнэ: Их-бага",
	"sortRating":                 "Үнэлгээ",
	"sortName":                   "Нэр",
	"noProductsFound":            "Бүтээгдэхүүн олдсонгүй",
	"tryAdjustingFilters":        "Шүүлтүүрээ өөрчилж үзнэ үү",
	"addToCart":                  "Сагсанд нэмэх",
	"buyNow":                     "Худалдаж авах",
	"usedBy":                     "Хэрэглэдэг",
	"new":                        "Шинэ",
	"topRated":                   "Шилдэг",
	"featured":                   "Онцлох",
	"yourCart":                   "Таны сагс",
	"emptyCart":                  "Таны сагс хоосон байна",
	"startShopping":              "Бараа нэмэхийн тулд худалдан авалт эхлүүлнэ үү",
	"browseProducts":             "Бүтээгдэхүүн үзэх",
	"quantity":                   "Тоо ширхэг",
	"price":                      "Үнэ",
	"remove":                     "Устгах",
	"subtotal":                   "Дэд нийлбэр",
	"shipping":                   "Хүргэлт",
	"tax":                        "Татвар",
	"total":                      "Нийт",
	"proceedToCheckout":          "Төлбөр төлөхөд шилжих",
	"continueShopping":           "Үргэлжлүүлэн худалдан авах",
	"checkout":                   "Төлбөр төлөх",
	"shippingInformation":        "Хүргэлтийн мэдээлэл",
	"fullName":                   "Бүтэн нэр",
	"emailAddress":               "Имэйл хаяг",
	"phoneNumber":                "Утасны дугаар",
	"address":                    "Хаяг",
	"city":                       "Хот",
	"zipCode":                    "Шуудангийн код",
	"country":                    "Улс",
	"paymentMethod":              "Төлбөрийн арга",
	"creditCard":                 "Кредит карт",
	"paypal":                     "PayPal",
	"cashOnDelivery":             "Бэлнээр төлөх",
	"placeOrder":                 "Захиалга өгөх",
	"orderSummary":               "Захиалгын хураангуй",
	"myOrders":                   "Миний захиалга",
	"noOrders":                   "Захиалга байхгүй байна",
	"startShoppingToPlaceOrders": "Захиалга өгөхийн тулд худалдан авалт эхлүүлнэ үү",
	"orderNumber":                "Захиалга",
	"orderDate":                  "Захиалгын огноо",
	"orderStatus":                "Төлөв",
	"orderTotal":                 "Нийт",
	"viewDetails":                "Дэлгэрэнгүй үзэх",
	"pending":                    "Хүлээгдэж буй",
	"processing":                 "Боловсруулж байна",
	"shipped":                    "Илгээсэн",
	"delivered":                  "Хүргэгдсэн",
	"cancelled":                  "Цуцлагдсан",
	"myWishlist":                 "Миний хүслийн жагсаалт",
	"emptyWishlist":              "Таны хүслийн жагсаалт хоосон байна",
	"addItemsYouLove":            "Таалагдсан бараагаа хүслийн жагсаалтандаа нэмнэ үү",
	"moveToCart":                 "Сагсанд шилжүүлэх",
	"search":                     "Бүтээгдэхүүн, брэнд, тоглогч хайх...",
	"searchResults":              "Хайлтын үр дүн",
	"showingResultsFor":          "Үр дүн харуулж байна",
	"noResultsFound":             "Үр дүн олдсонгүй",
	"tryDifferentKeywords":       "Өөр түлхүүр үгээр хайж үзнэ үү",
	"browseByCategory":           "Ангилалаар үзэх",
	"shopByBrand":                "Брэндээр худалдан авах",
	"enterYourEmail":             "Имэйл хаягаа оруулна уу",
	"enterYourPassword":          "Нууц үгээ оруулна уу",
	"enterYourFullName":          "Бүтэн нэрээ оруулна уу",
	"password":                   "Нууц үг",
	"createPassword":             "Нууц үг үүсгэх (хамгийн багадаа 6 тэмдэгт)",
	"passwordMinLength":          "Нууц үг хамгийн багадаа 6 тэмдэгттэй байх ёстой",
	"welcomeBack":                "Тавтай морил!",
	"loginToContinue":            "Үргэлжлүүлэхийн тулд нэвтэрнэ үү",
	"createAccount":              "Бүртгэл үүсгэх",
	"joinUs":                     "Бидэнтэй нэгдэж, худалдан авалт эхлүүлээрэй!",
	"dontHaveAccount":            "Бүртгэлгүй юу?",
	"alreadyHaveAccount":         "Бүртгэлтэй юу?",
	"or":                         "эсвэл",
	"customizeExperience":        "Өөрийн туршлагаа тохируулах",
	"theme":                      "Загвар",
	"lightMode":                  "Цайвар горим",
	"darkMode":                   "Харанхуй горим",
	"language":                   "Хэл",
	"english":                    "Англи",
	"mongolian":                  "Монгол",
	"currency":                   "Валют",
	"account":                    "Бүртгэл",
	"email":                      "Имэйл",
	"role":                       "Үүрэг",
	"youAreNotLoggedIn":          "Та нэвтрээгүй байна",
	"proGearFooterDesc":          "Дэлхийн мэргэжлийн киберспортын тоглогчдын итгэдэг дээд зэргийн тоглоомын төхөөрөмж.",
	"quickLinks":                 "Шуурхай холбоос",
	"support":                    "Дэмжлэг",
	"contact":                    "Холбоо барих",
	"contactUs":                  "Бидэнтэй холбогдох",
	"shippingInfo":               "Хүргэлтийн мэдээлэл",
	"returnsPolicy":              "Буцаалтын бодлого",
	"faq":                        "Түгээмэл асуулт",
	"privacyPolicy":              "Нууцлалын бодлого",
	"termsOfService":             "Үйлчилгээний нөхцөл",
	"allRightsReserved":          "Бүх эрх хуулиар хамгаалагдсан.",
	"adminDashboard":             "Админ самбар",
	"manageYourPlatform":         "Цахим худалдааны платформоо удирдах",
	"totalProducts":              "Нийт бүтээгдэхүүн",
	"totalOrders":                "Нийт захиалга",
	"totalRevenue":               "Нийт орлого",
	"pendingOrders":              "Хүлээгдэж буй захиалга",
	"winterSaleControls":         "Өвлийн хямдралын удирдлага",
	"removeBanner":               "Баннер устгах",
	"addBanner":                  "Баннер нэмэх",
	"on":                         "ИДЭВХТЭЙ",
	"off":                        "ИДЭВХГҮЙ",
	"banner":                     "Баннер",
	"visible":                    "Харагдаж байна",
	"hidden":                     "Нуугдсан",
	"saleStatus":                 "Хямдралын төлөв",
	"active":                     "Идэвхтэй",
	"inactive":                   "Идэвхгүй",
	"productsManagement":         "Бүтээгдэхүүний удирдлага",
	"ordersManagement":           "Захиалгын удирдлага",
	"addNewProduct":              "Шинэ бүтээгдэхүүн нэмэх",
	"productTitle":               "Бүтээгдэхүүний нэр",
	"description":                "Тайлбар",
	"image":                      "Зураг",
	"imageUrl":                   "Зургийн URL",
	"title":                      "Нэр",
	"actions":                    "Үйлдэл",
	"delete":                     "Устгах",
	"cancel":                     "Цуцлах",
	"save":                       "Хадгалах",
	"addProduct":                 "Бүтээгдэхүүн нэмэх",
	"editProduct":                "Бүтээгдэхүүн засах",
	"deleteProduct":              "Бүтээгдэхүүн устгах",
	"manageProducts":             "Бүтээгдэхүүн удирдах",
	"manageOrders":               "Захиалга удирдах",
	"manageUsers":                "Хэрэглэгч удирдах",
	"noOrdersYet":                "Захиалга байхгүй байна",
	"order":                      "Захиалга",
	"customer":                   "Үйлчлүүлэгч",
	"date":                       "Огноо",
	"status":                     "Төлөв",
	"deliveryAddress":            "Хүргэлтийн хаяг",
	"totalAmount":                "Нийт дүн",
	"qty":                        "Тоо",
	"accessDenied":               "Нэвтрэх эрхгүй",
	"adminPrivilegesRequired":    "Админ эрх шаардлагатай",
	"goHome":                     "Нүүр хуудас руу очих",
	"areYouSure":                 "Та энэ бүтээгдэхүүнийг устгахдаа итгэлтэй байна уу?",
	"winterSaleBannerAdded":      "Өвлийн хямдралын баннер нэмэгдлээ!",
	"winterSaleBannerRemoved":    "Өвлийн хямдралын баннер устгагдлаа!",
	"winterSaleActivated":        "Өвлийн хямдрал идэвхжлээ!",
	"winterSaleDeactivated":      "Өвлийн хямдрал идэвхгүй боллоо!",
	"winterSaleIsLive":           "Өвлийн хямдрал эхэллээ! Дээд зэргийн тоглоомын төхөөрөмжид гайхалтай хөнгөлөлт аваарай!",
	"shopNowLink":                "Худалдан авах",
	"productAdded":               "Бүтээгдэхүүн сагсанд нэмэгдлээ",
	"productRemoved":             "Бүтээгдэхүүн сагснаас хасагдлаа",
	"addedToWishlist":            "Хүслийн жагсаалтанд нэмэгдлээ",
	"removedFromWishlist":        "Хүслийн жагсаалтаас хасагдлаа",
	"orderPlaced":                "Захиалга амжилттай өгөгдлөө",
	"loginRequired":              "Үргэлжлүүлэхийн тулд нэвтэрнэ үү",
	"adminAccessRequired":        "Админ эрх шаардлагатай",
	"filter":                     "Шүүлтүүр",
	"sortBy":                     "Эрэмбэлэх",
	"loading":                    "Ачааллаж байна...",
	"error":                      "Алдаа",
	"success":                    "Амжилттай",
	"warning":                    "Анхааруулга",
	"info":                       "Мэдээлэл",
	"reviews":                    "Сэтгэгдэл",
	"writeReview":                "Сэтгэгдэл бичих",
	"yourRating":                 "Таны үнэлгээ",
	"comment":                    "Сэтгэгдэл",
	"submitReview":               "Илгээх",
	"noReviews":                  "Сэтгэгдэл алга",
	"proPlayer":                  "Мэргэжлийн тоглогч",
	"team":                       "Баг",
	"mouse":                      "Хулгана",
	"keyboard":                   "Гар",
	"pleaseLoginToContinue":      "Энэ хуудсыг үзэхийн тулд нэвтэрнэ үү",
	"users":                      "Хэрэглэгчид",
	"exportUsers":                "Хэрэглэгч татах",
	"exportOrders":               "Захиалга татах",
	"estimatedDelivery":          "Хүргэгдэх хугацаа",
	"cancelOrder":                "Захиалга цуцлах",
	"saleSubtitle":               "$50-аас дээш бараа онцгой үнээр",
	"winterSaleSubtitle":         "Хямдралын үеэр бүх бараа 20% хөнгөлөлттэй",
	"winterSaleInactive":         "Өвлийн хямдрал одоогоор явагдахгүй байна",
	"failedToLoadProducts":       "Бүтээгдэхүүн ачаалж чадсангүй",
	"name":                       "Нэр",
	"sortNewest":                 "Шинэ нь эхэндээ",
	"toggleTheme":                "Загвар солих",
	"saveSettings":               "Тохиргоо хадгалах",
	"registrationSuccessful":     "Бүртгэл амжилттай!",
	"welcomeAdmin":               "Тавтай морил, Админ!",
	"loggedOut":                  "Амжилттай гарлаа",
	"orderCancelled":             "Захиалга цуцлагдлаа",
	"orderStatusUpdated":         "Захиалгын төлөв шинэчлэгдлээ",
	"reviewSubmitted":            "Сэтгэгдэл амжилттай илгээгдлээ",
	"cartUpdated":                "Сагс шинэчлэгдлээ",
	"settingsSaved":              "Тохиргоо хадгалагдлаа",
	"productSaved":               "Бүтээгдэхүүн хадгалагдлаа",
	"productDeleted":             "Бүтээгдэхүүн устгагдлаа",
}
